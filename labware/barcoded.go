package labware

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Barcode length bounds for a physical label.
const (
	MinBarcodeLength = 5
	MaxBarcodeLength = 255
)

// Barcoded is a physical piece of labware carrying a barcode label,
// tied to the definition that describes its geometry. Barcode stays
// empty until the plate has been labelled.
type Barcoded struct {
	UUID       uuid.UUID
	Definition *Definition
	Barcode    string
}

// EnsureUUID assigns a fresh random UUID when none is set.
func (b *Barcoded) EnsureUUID() {
	if b.UUID == uuid.Nil {
		b.UUID = uuid.New()
	}
}

// Validate checks the labware and its definition. The barcode may be
// empty; when present it must be a plausible label.
func (b *Barcoded) Validate() error {
	if b.UUID == uuid.Nil {
		return fmt.Errorf("barcoded labware: %w", ErrNoUUID)
	}
	if b.Definition == nil {
		return errors.New("labware: barcoded labware needs a definition")
	}
	if err := b.Definition.Validate(); err != nil {
		return fmt.Errorf("barcoded labware %s: %w", b.UUID, err)
	}
	return b.ValidateBarcode(true)
}

// ValidateBarcode checks the barcode length bounds. With allowEmpty it
// accepts labware that has not been labelled yet.
func (b *Barcoded) ValidateBarcode(allowEmpty bool) error {
	if b.Barcode == "" {
		if allowEmpty {
			return nil
		}
		return ErrNoBarcode
	}
	if len(b.Barcode) < MinBarcodeLength || len(b.Barcode) > MaxBarcodeLength {
		return fmt.Errorf("labware: barcode %q length %d outside [%d, %d]",
			b.Barcode, len(b.Barcode), MinBarcodeLength, MaxBarcodeLength)
	}
	return nil
}

// Equal reports whether two barcoded labware records describe the same
// physical object with the same definition.
func (b *Barcoded) Equal(other *Barcoded) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.UUID == other.UUID &&
		b.Barcode == other.Barcode &&
		b.Definition.Equal(other.Definition)
}
