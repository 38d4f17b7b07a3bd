package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/ssargent/prodfile/pkg/codec"
)

// Validator applies the input rules used before a product is appended
type Validator struct {
	RequireNumericID bool
}

// ParseProduct trims and validates raw field text and builds a Product.
// Rules are checked in order and the first failure is returned.
func (v Validator) ParseProduct(name, description, id, costText string) (codec.Product, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	id = strings.TrimSpace(id)
	costText = strings.TrimSpace(costText)

	if name == "" || description == "" || id == "" || costText == "" {
		return codec.Product{}, invalid(EmptyField, "", "all fields are required")
	}

	if verr := v.checkText(name, description, id); verr != nil {
		return codec.Product{}, verr
	}

	cost, err := strconv.ParseFloat(costText, 64)
	if err != nil || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return codec.Product{}, invalid(CostNotNumeric, "cost", "%q is not a valid number", costText)
	}
	if cost < 0 {
		return codec.Product{}, invalid(NegativeCost, "cost", "cannot be negative")
	}

	return codec.Product{Name: name, Description: description, ID: id, Cost: cost}, nil
}

// Validate checks an already typed product against the same rules as ParseProduct
func (v Validator) Validate(p codec.Product) error {
	if p.Name == "" || p.Description == "" || p.ID == "" {
		return invalid(EmptyField, "", "all fields are required")
	}
	if err := v.checkText(p.Name, p.Description, p.ID); err != nil {
		return err
	}
	if math.IsNaN(p.Cost) || math.IsInf(p.Cost, 0) {
		return invalid(CostNotNumeric, "cost", "must be a finite number")
	}
	if p.Cost < 0 {
		return invalid(NegativeCost, "cost", "cannot be negative")
	}
	return nil
}

func (v Validator) checkText(name, description, id string) *ValidationError {
	if n := codec.CodeUnits(name); n > codec.NameSize {
		return invalid(NameTooLong, "name", "must be %d characters or less, got %d", codec.NameSize, n)
	}
	if n := codec.CodeUnits(description); n > codec.DescriptionSize {
		return invalid(DescriptionTooLong, "description", "must be %d characters or less, got %d", codec.DescriptionSize, n)
	}
	if n := codec.CodeUnits(id); n != codec.IDSize {
		return invalid(IDLength, "id", "must be exactly %d characters, got %d", codec.IDSize, n)
	}
	if v.RequireNumericID && !isDigits(id) {
		return invalid(IDNotNumeric, "id", "must contain only digits")
	}
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
