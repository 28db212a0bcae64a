package llm

import "context"

// Unavailable fails every call with Err. It stands in for a provider whose
// credentials are not configured so the rest of the service can start.
type Unavailable struct {
	Err error
}

func (u Unavailable) Generate(context.Context, Request) (*Response, error) {
	return nil, u.Err
}

func (u Unavailable) Speak(context.Context, string) ([]byte, error) {
	return nil, u.Err
}
