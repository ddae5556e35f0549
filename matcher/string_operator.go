package matcher

import "strings"

// StringOperator is a function to equate two strings.
type StringOperator func(string, string) bool

// String operators.
var (
	StringEquals     StringOperator = stringsEqual
	StringStartsWith StringOperator = strings.HasPrefix
	StringEndsWith   StringOperator = strings.HasSuffix
	StringContains   StringOperator = strings.Contains
)

func stringsEqual(source, target string) bool {
	return source == target
}

var operatorNames = map[string]*StringOperator{
	"equals":   &StringEquals,
	"prefix":   &StringStartsWith,
	"suffix":   &StringEndsWith,
	"contains": &StringContains,
}

// ParsePattern splits an "operator:pattern" expression, where the operator
// is one of equals, prefix, suffix and contains. An expression without a
// known operator is matched with StringEquals.
func ParsePattern(expr string) (*StringOperator, string) {
	if name, pattern, ok := strings.Cut(expr, ":"); ok {
		if operator, ok := operatorNames[name]; ok {
			return operator, pattern
		}
	}
	return &StringEquals, expr
}
