package api

// Subsystem is a transport that accepts requests on behalf of the api,
// for example an http server.
type Subsystem interface {
	String() string
	Start(errors chan<- error)
	Stop() error
}
