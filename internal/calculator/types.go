package calculator

const (
	// Name is the service greeting and the name reported by GET /info.
	Name    = "DevOps Flask Calculator API"
	Version = "1.0.0"
)

// Operation is one of the four supported binary operations.
type Operation string

const (
	Add Operation = "add"
	Sub Operation = "sub"
	Mul Operation = "mul"
	Div Operation = "div"
)

// Operations lists every operation in route registration order.
var Operations = []Operation{Add, Sub, Mul, Div}

// CalcRequest is the JSON body of POST /calc. Fields are decoded loosely,
// see DecodeBody and Coerce.
type CalcRequest struct {
	Op string `json:"op"`
	A  any    `json:"a"`
	B  any    `json:"b"`
}

// CalcResponse is the success body of every arithmetic endpoint.
type CalcResponse struct {
	Operation Operation `json:"operation"`
	A         Number    `json:"a"`
	B         Number    `json:"b"`
	Result    Number    `json:"result"`
}

// Endpoints returns the endpoint descriptors reported by GET /info.
func Endpoints() []string {
	endpoints := make([]string, 0, len(Operations)+1)
	for _, op := range Operations {
		endpoints = append(endpoints, "GET /"+string(op)+"?a=..&b=..")
	}
	return append(endpoints, "POST /calc")
}
