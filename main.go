/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/htx-labs/transcriber-api/cmd"

// @title           Audio Transcriber API
// @version         1.0.0
// @description     Audio ingestion, versioning and transcription service
// @contact.name    API Support
// @contact.url     https://github.com/htx-labs/transcriber-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http
func main() {
	cmd.Execute()
}
