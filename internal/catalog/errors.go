package catalog

import "fmt"

// FetchError is returned when the remote catalog cannot be reached or
// answers with a non-2xx status. It is displayable: the presentation
// layer shows Error() to the user and does not retry on its own.
type FetchError struct {
	Resource string
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to fetch %s: catalog API returned status %d", e.Resource, e.Status)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
