package board

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"kanban/internal/models"
)

const boardsSchemaURL = "boards.schema.json"

//go:embed boards.schema.json
var boardsSchemaJSON string

var (
	boardsSchemaOnce sync.Once
	boardsSchema     *jsonschema.Schema
	boardsSchemaErr  error
)

func compiledBoardsSchema() (*jsonschema.Schema, error) {
	boardsSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(boardsSchemaURL, strings.NewReader(boardsSchemaJSON)); err != nil {
			boardsSchemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		boardsSchema, boardsSchemaErr = compiler.Compile(boardsSchemaURL)
	})
	return boardsSchema, boardsSchemaErr
}

// EncodeBoards serializes a board collection in the stored layout.
func EncodeBoards(boards []models.Board) (string, error) {
	if boards == nil {
		boards = []models.Board{}
	}
	data, err := json.Marshal(models.CloneBoards(boards))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeBoards parses and schema-checks a stored board collection.
func DecodeBoards(raw string) ([]models.Board, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty document")
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse boards: %w", err)
	}

	schema, err := compiledBoardsSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("boards do not match schema: %s", schemaErrorSummary(err))
	}

	var boards []models.Board
	if err := json.Unmarshal([]byte(raw), &boards); err != nil {
		return nil, fmt.Errorf("decode boards: %w", err)
	}
	return models.CloneBoards(boards), nil
}

// schemaErrorSummary returns the first leaf cause of a validation failure.
func schemaErrorSummary(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)
}
