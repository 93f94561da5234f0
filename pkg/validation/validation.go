package validation

import (
	"sync"

	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	onceValidate sync.Once

	conform     *mold.Transformer
	onceConform sync.Once
)

func Validate() *validator.Validate {
	onceValidate.Do(func() {
		validate = validator.New()
	})

	return validate
}

// Conform normalises struct fields tagged with `mod`.
func Conform() *mold.Transformer {
	onceConform.Do(func() {
		conform = modifiers.New()
	})

	return conform
}
