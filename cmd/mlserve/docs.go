package main

// General API documentation for swaggo. Regenerate with `swag init -g cmd/mlserve/docs.go -o internal/docs`.
//
// @title           ML inference api
// @version         v1
// @description     HTTP API serving predictions from a pre-trained classifier artifact.
//
// @contact.name   mlserve maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
