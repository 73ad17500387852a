// Package http implements the REST transport of the diary server.
//
// It wires chi routes for entries, history, statistics, search, export and
// preferences onto the service layer. Request tracing, access logging,
// gzip, bearer authentication (remote backend only) and HashSHA256 body
// signatures are applied here before requests reach a service.
package http
