// Package client is a typed client for the txtai API.
//
// Every service shares one request contract: requests go to {url}/{method},
// carry "Authorization: Bearer <token>" only when a token is configured, and
// decode the JSON response into the documented result type.
//
//	c := client.New("http://localhost:8000", client.WithToken(token))
//
//	results, err := c.Embeddings.Search(ctx, client.SearchRequest{
//	    Query: "feel good story",
//	    Limit: client.Ptr(1),
//	})
//
// Construction never reads the environment. Use config.FromEnvironment at the
// call site to seed the url and token from TXTAI_API_URL and TXTAI_API_TOKEN.
package client
