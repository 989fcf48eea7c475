package service

import "context"

// IGeneratorService produces narrative text from a prompt.
type IGeneratorService interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
