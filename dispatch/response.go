package dispatch

// ResponseKind discriminates the variants of Response.
type ResponseKind int

// Dispatch surface response kinds, spec.md §6.
const (
	RespModelUpdated ResponseKind = iota
	RespAcknowledgement
	RespError
	RespSaveReady
)

// Response is what Engine.Dispatch returns for a single Request.
type Response struct {
	Kind ResponseKind

	// RespError
	Err error

	// RespSaveReady
	SaveJSON string
}

func modelUpdated() Response       { return Response{Kind: RespModelUpdated} }
func acknowledgement() Response    { return Response{Kind: RespAcknowledgement} }
func errorResponse(err error) Response { return Response{Kind: RespError, Err: err} }
func saveReady(json string) Response { return Response{Kind: RespSaveReady, SaveJSON: json} }
