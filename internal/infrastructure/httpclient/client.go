package httpclient

import "net/http"

// HTTPClient abstrae el cliente HTTP para poder inyectar fakes en los tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
