package sim

import (
	"strings"

	"github.com/pkg/errors"
)

// CellType is the cell density: how many bits a single cell level encodes.
type CellType int

const (
	Single CellType = iota // 1 bit per cell (SLC)
	Double                 // 2 bits per cell (MLC)
	Triple                 // 3 bits per cell (TLC)
	Quadro                 // 4 bits per cell (QLC)
	Penta                  // 5 bits per cell (PLC)
)

// AllCellTypes lists every density from sparsest to densest.
var AllCellTypes = []CellType{Single, Double, Triple, Quadro, Penta}

// cellTypeNames maps accepted names (canonical and industry abbreviations) to cell types.
var cellTypeNames = map[string]CellType{
	"single": Single, "slc": Single,
	"double": Double, "mlc": Double,
	"triple": Triple, "tlc": Triple,
	"quadro": Quadro, "qlc": Quadro,
	"penta": Penta, "plc": Penta,
}

// Multiplier returns the number of bits stored per cell.
func (c CellType) Multiplier() int {
	return int(c) + 1
}

// Sections returns the number of distinct level ranges a cell of this type distinguishes.
func (c CellType) Sections() int {
	return 1 << c.Multiplier()
}

// IsValid reports whether c is one of the five known densities.
func (c CellType) IsValid() bool {
	return c >= Single && c <= Penta
}

func (c CellType) String() string {
	switch c {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case Quadro:
		return "quadro"
	case Penta:
		return "penta"
	}
	return "unknown"
}

// ParseCellType converts a name such as "triple" or "tlc" into a CellType.
func ParseCellType(name string) (CellType, error) {
	ct, ok := cellTypeNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidConfig, "unknown cell type %q; valid: single, double, triple, quadro, penta", name)
	}
	return ct, nil
}

// UnmarshalText lets CellType be used directly in YAML configuration.
func (c *CellType) UnmarshalText(text []byte) error {
	ct, err := ParseCellType(string(text))
	if err != nil {
		return err
	}
	*c = ct
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (c CellType) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, errors.Wrapf(ErrInvalidConfig, "cell type %d", int(c))
	}
	return []byte(c.String()), nil
}
