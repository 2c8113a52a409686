package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/highlanderkev/investing-agents/internal/a2a"
)

// Interactive client for the investment agent. Fetches the agent card,
// then either sends a single query or drops into a prompt loop where every
// message continues the same task.
func main() {
	baseURL := flag.String("url", "http://localhost:8000/", "agent base URL")
	query := flag.String("query", "", "single query to send (skips interactive mode)")
	stream := flag.Bool("stream", false, "use message/stream and print events as they arrive")
	flag.Parse()

	url := strings.TrimSuffix(*baseURL, "/") + "/"
	httpClient := &http.Client{Timeout: 2 * time.Minute}

	card, err := fetchCard(httpClient, url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch agent card: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Connected to %s (v%s)\n", card.Name, card.Version)
	fmt.Println("Skills:")
	for _, skill := range card.Skills {
		fmt.Printf("  - %s: %s\n", skill.ID, skill.Description)
	}
	fmt.Println()

	taskID := uuid.NewString()

	if *query != "" {
		ask(httpClient, url, taskID, *query, *stream)
		return
	}

	fmt.Println("Ask an investment question (type 'quit' or 'exit' to leave):")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		ask(httpClient, url, taskID, line, *stream)
	}
}

func fetchCard(client *http.Client, baseURL string) (a2a.AgentCard, error) {
	var card a2a.AgentCard
	resp, err := client.Get(baseURL + ".well-known/agent.json")
	if err != nil {
		return card, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return card, fmt.Errorf("unexpected status %s", resp.Status)
	}
	err = json.NewDecoder(resp.Body).Decode(&card)
	return card, err
}

func ask(client *http.Client, baseURL, taskID, text string, stream bool) {
	method := a2a.MethodMessageSend
	if stream {
		method = a2a.MethodMessageStream
	}

	req := a2a.Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`"1"`),
		Method:  method,
	}
	params, _ := json.Marshal(a2a.MessageSendParams{Message: a2a.Message{
		Kind:      a2a.KindMessage,
		MessageID: uuid.NewString(),
		TaskID:    taskID,
		Role:      "user",
		Parts:     []a2a.Part{a2a.TextPart(text)},
	}})
	req.Params = params

	body, _ := json.Marshal(req)
	resp, err := client.Post(baseURL, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		return
	}
	defer resp.Body.Close()

	if stream {
		printStream(resp)
		return
	}

	var rpcResp struct {
		Result a2a.Task   `json:"result"`
		Error  *a2a.Error `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		fmt.Fprintf(os.Stderr, "invalid response: %v\n", err)
		return
	}
	if rpcResp.Error != nil {
		fmt.Fprintf(os.Stderr, "error %d: %s\n", rpcResp.Error.Code, rpcResp.Error.Message)
		return
	}

	fmt.Printf("[task %s: %s]\n", rpcResp.Result.ID, rpcResp.Result.Status.State)
	for _, artifact := range rpcResp.Result.Artifacts {
		for _, part := range artifact.Parts {
			fmt.Println(part.Text)
		}
		if artifact.Metadata != nil {
			fmt.Printf("[category=%s mode=%s]\n", artifact.Metadata["category"], artifact.Metadata["mode"])
		}
	}
	fmt.Println()
}

// printStream reads SSE frames and renders each status or artifact event.
func printStream(resp *http.Response) {
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")

		var frame struct {
			Result json.RawMessage `json:"result"`
			Error  *a2a.Error      `json:"error"`
		}
		if err := json.Unmarshal([]byte(payload), &frame); err != nil {
			fmt.Fprintf(os.Stderr, "bad frame: %v\n", err)
			continue
		}
		if frame.Error != nil {
			fmt.Fprintf(os.Stderr, "error %d: %s\n", frame.Error.Code, frame.Error.Message)
			return
		}

		var kind struct {
			Kind string `json:"kind"`
		}
		_ = json.Unmarshal(frame.Result, &kind)

		switch kind.Kind {
		case a2a.KindStatusUpdate:
			var ev a2a.TaskStatusUpdateEvent
			if err := json.Unmarshal(frame.Result, &ev); err == nil {
				fmt.Printf("[%s]\n", ev.Status.State)
				if ev.Final {
					fmt.Println()
					return
				}
			}
		case a2a.KindArtifactUpdate:
			var ev a2a.TaskArtifactUpdateEvent
			if err := json.Unmarshal(frame.Result, &ev); err == nil {
				for _, part := range ev.Artifact.Parts {
					fmt.Println(part.Text)
				}
			}
		}
	}
}
