package vocab

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when no word survives the level filter.
var ErrEmptyDataset = errors.New("no words available")

// EmptyDatasetError reports which allow-list produced an empty pool.
type EmptyDatasetError struct {
	Source string
	Levels LevelSet
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("no words found in %s for levels %s", e.Source, e.Levels)
}

func (e *EmptyDatasetError) Unwrap() error { return ErrEmptyDataset }

// LoadError indicates the dataset could not be read, fetched or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
