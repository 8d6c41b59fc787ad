package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"ragapi/internal/apiclient"
	"ragapi/internal/tui"
)

func main() {
	var serverURL string
	flag.StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the RAG API server")
	flag.Parse()

	client := apiclient.New(serverURL)

	// Optional positional args: PDF files to upload before chatting.
	for _, path := range flag.Args() {
		msg, err := client.Upload(context.Background(), path)
		if err != nil {
			log.Fatalf("upload %s failed: %v", path, err)
		}
		fmt.Println(msg)
	}

	m := tui.New(client)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
