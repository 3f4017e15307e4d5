package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

// Walks the main flows against a running server seeded with the demo fixtures.
// Usage: go run ./scripts [baseURL]

var baseURL = "http://localhost:3000/api"

func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func sendRequest(method, url, token string, body interface{}, headers map[string]string) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

type step struct {
	title   string
	method  string
	path    string
	body    interface{}
	headers map[string]string
	want    int
}

func main() {
	if len(os.Args) > 1 {
		baseURL = os.Args[1]
	}
	color.Cyan("Starting MindfulMe API smoke run against %s\n", baseURL)

	_, body, err := sendRequest("POST", "/auth/login", "", map[string]string{"username": "alex", "password": "password123"}, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	var login struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &login)
	if login.Token == "" {
		color.Red("Login did not return a token")
		prettyPrint(body)
		os.Exit(1)
	}
	color.Green("Logged in as alex")

	username := fmt.Sprintf("smoke-%d", time.Now().Unix())
	steps := []step{
		{"Who am I", "GET", "/auth/me", nil, nil, 200},
		{"Create user", "POST", "/users", map[string]string{"username": username, "password": "x", "name": "Smoke", "email": "smoke@example.com"}, nil, 201},
		{"Log a mood", "POST", "/moods", map[string]interface{}{"userId": 1, "mood": "calm", "value": 60, "note": "smoke run"}, nil, 201},
		{"Last three moods", "GET", "/users/1/moods?limit=3", nil, nil, 200},
		{"Log sleep", "POST", "/sleep", map[string]interface{}{"userId": 1, "hours": 7.5}, nil, 201},
		{"Meditations", "GET", "/meditations", nil, nil, 200},
		{"Calming sounds", "GET", "/calming-sounds", nil, nil, 200},
		{"Post to community", "POST", "/community/posts", map[string]interface{}{"userId": 1, "content": "Smoke test says hi"}, map[string]string{"Idempotency-Key": username}, 201},
		{"Replay the same post", "POST", "/community/posts", map[string]interface{}{"userId": 1, "content": "Smoke test says hi"}, map[string]string{"Idempotency-Key": username}, 201},
		{"Like first post", "POST", "/community/posts/1/like", nil, nil, 200},
		{"Ask the companion", "POST", "/ai-chat", map[string]interface{}{"userId": 1, "message": "I have trouble sleeping"}, nil, 200},
		{"Chat history", "GET", "/users/1/chat-history", nil, nil, 200},
	}

	failed := 0
	for i, s := range steps {
		color.Yellow("\n%d. %s (%s %s)", i+1, s.title, s.method, s.path)
		resp, body, err := sendRequest(s.method, s.path, login.Token, s.body, s.headers)
		if err != nil {
			color.Red("Failed: %v", err)
			failed++
			continue
		}
		if resp.StatusCode != s.want {
			color.Red("Status: %s (want %d)", resp.Status, s.want)
			failed++
		} else {
			color.Green("Status: %s", resp.Status)
		}
		if resp.Header.Get("Idempotent-Replay") == "true" {
			color.Magenta("Replayed from idempotency cache")
		}
		prettyPrint(body)
	}

	if failed > 0 {
		color.Red("\n%d of %d steps failed", failed, len(steps))
		os.Exit(1)
	}
	color.Green("\nAll %d steps passed", len(steps))
}
