package assistant

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"google.golang.org/genai"
)

var (
	clientMu  sync.Mutex
	singleton *genai.Client
)

// GetClient returns the process-wide Gemini client. The handle is created
// on first successful call and read-only afterwards; a missing or rejected
// key is reported on every call until initialization succeeds.
func GetClient(ctx context.Context) (*genai.Client, error) {
	clientMu.Lock()
	defer clientMu.Unlock()

	if singleton != nil {
		return singleton, nil
	}

	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("model initialization failed: GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("model initialization failed: %w", err)
	}

	singleton = client
	return singleton, nil
}

// resetClient is used by tests only
func resetClient() {
	clientMu.Lock()
	defer clientMu.Unlock()
	singleton = nil
}
