// Package id provides identifier generation for outgoing requests.
//
// Every Management API call carries a request id so a failing call can be
// found in the service logs. Ids are UUID v4 strings from github.com/google/uuid;
// Short returns the first block for compact log lines.
package id
