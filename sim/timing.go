package sim

// OperationType enumerates the physical operations a device charges time for.
type OperationType int

const (
	Read OperationType = iota
	Write
	Delete
)

func (o OperationType) String() string {
	switch o {
	case Read:
		return "read"
	case Write:
		return "write"
	case Delete:
		return "delete"
	}
	return "unknown"
}

// operationTimes holds the latency (in ticks) of each operation, indexed by [CellType][OperationType].
// Costs grow super-linearly with density; Delete > Write > Read at every density.
var operationTimes = [5][3]int64{
	Single: {Read: 3, Write: 20, Delete: 350},
	Double: {Read: 6, Write: 60, Delete: 700},
	Triple: {Read: 12, Write: 150, Delete: 1400},
	Quadro: {Read: 25, Write: 300, Delete: 2200},
	Penta:  {Read: 50, Write: 600, Delete: 3000},
}

// OperationTime returns the simulated latency of op on a cell of type ct.
// The value is a descriptive cost for a scheduler to charge; nothing here sleeps.
func OperationTime(ct CellType, op OperationType) int64 {
	return operationTimes[ct][op]
}
