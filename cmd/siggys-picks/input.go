package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/yourusername/siggys-picks/internal/models"
)

// openInput opens a file, or stdin for "-"
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

func decodeMatch(r io.Reader) (models.MatchInput, error) {
	var match models.MatchInput
	if err := json.NewDecoder(r).Decode(&match); err != nil {
		return models.MatchInput{}, fmt.Errorf("%w: %v", models.ErrMatchDecode, err)
	}
	if err := models.ValidateMatch(match); err != nil {
		return models.MatchInput{}, err
	}
	return match, nil
}

func decodeMatches(r io.Reader) ([]models.MatchInput, error) {
	var matches []models.MatchInput
	if err := json.NewDecoder(r).Decode(&matches); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMatchDecode, err)
	}
	for i, match := range matches {
		if err := models.ValidateMatch(match); err != nil {
			return nil, fmt.Errorf("match %d: %w", i, err)
		}
	}
	return matches, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
