/*
Package blogsdk provides the wire types and a Go client for the quill blog API.

# Overview

The server and the client share the request and response types defined here,
so the JSON field names live in one place. Every response is wrapped in an
envelope:

	{"success": true, "message": "...", "data": {...}, "pagination": {...}}

Failures carry "success": false, a message and, for validation failures, a
list of field messages in "errors". The client turns those into *APIError.

# Client vs Session

  - Client: anonymous operations (health, listing and reading published posts,
    statistics) plus Register, Login and Bootstrap.
  - Session: operations on behalf of a logged-in user. A Session holds the
    bearer token returned by register or login.

	client := blogsdk.NewClient("http://localhost:3000")

	session, err := client.Login(ctx, "ana@example.com", "secret1")
	if err != nil {
		return err
	}

	post, err := session.CreatePost(ctx, blogsdk.CreatePostRequest{
		Title:   "Hello",
		Content: "My first post on quill.",
	})

Tokens are not refreshed. When one expires, log in again.

# Errors

	var apiErr *blogsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusForbidden {
		// not the owner
	}
*/
package blogsdk
