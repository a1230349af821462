package pipeline

// Kind identifies the diagram kind requested by the caller.
// It selects header-correction behavior; it is a hint, not a parse result.
type Kind int

// Diagram kinds. Usecase and activity are aliases realized as flowchart
// notation with a fixed direction; sequence and class map to native headers.
const (
	KindUnspecified Kind = iota
	KindUsecase
	KindActivity
	KindSequence
	KindClass
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUsecase:
		return "usecase"
	case KindActivity:
		return "activity"
	case KindSequence:
		return "sequence"
	case KindClass:
		return "class"
	default:
		return "unspecified"
	}
}
