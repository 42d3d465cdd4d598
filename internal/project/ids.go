package project

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewProjectID generates a project ID in format PROJ-{nanoid(10)}.
func NewProjectID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PROJ-%s", id), nil
}

// NewRunID generates a pipeline run ID in format RUN-{nanoid(10)}.
func NewRunID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("RUN-%s", id), nil
}
