package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"cinevoice/internal/app/metrics"
	"cinevoice/internal/config"
)

const systemPrompt = `You are a friendly movie recommendation assistant.
Listen to what the user asks for, figure out their taste, and answer with a
short spoken-style reply recommending one to three movies with a one-line
reason each. Keep the whole reply under 80 words.`

// GeminiAssistant implements Assistant on top of the Gemini API
type GeminiAssistant struct {
	models  config.ModelConfig
	metrics *metrics.Metrics
	logger  *zap.Logger

	// call seams, overridden in tests
	live       func(ctx context.Context, audio []byte, mimeType string) (*AudioReply, error)
	generate   func(ctx context.Context, audio []byte, mimeType string) (string, error)
	synthesize func(ctx context.Context, text string) ([]byte, string, error)
}

// NewGeminiAssistant creates the vendor-backed assistant
func NewGeminiAssistant(models config.ModelConfig, m *metrics.Metrics, logger *zap.Logger) *GeminiAssistant {
	a := &GeminiAssistant{
		models:  models,
		metrics: m,
		logger:  logger,
	}
	a.live = a.respondLive
	a.generate = a.generateReply
	a.synthesize = a.Synthesize
	return a
}

// RespondToAudio opens a live session, sends the clip as one user turn and
// collects the complete response. A live failure falls back exactly once to
// a single-shot call; there is no further retry. When synthesis of the
// fallback reply fails too, the text-only reply is returned instead of an
// error.
func (a *GeminiAssistant) RespondToAudio(ctx context.Context, audio []byte, mimeType string) (*AudioReply, error) {
	reply, err := a.live(ctx, audio, mimeType)
	if err == nil {
		return reply, nil
	}

	a.metrics.LiveFallbacks.Inc()
	a.logger.Warn("live session failed, falling back to single-shot call", zap.Error(err))

	text, err := a.generate(ctx, audio, mimeType)
	if err != nil {
		a.metrics.VendorCallErrors.Inc()
		return nil, err
	}

	reply = &AudioReply{Text: text}

	speech, speechMIME, err := a.synthesize(ctx, text)
	if err != nil {
		a.metrics.SynthesisFailures.Inc()
		a.logger.Warn("speech synthesis failed, returning text only", zap.Error(err))
		return reply, nil
	}

	reply.Audio = speech
	reply.MIMEType = speechMIME
	return reply, nil
}

func (a *GeminiAssistant) respondLive(ctx context.Context, audio []byte, mimeType string) (*AudioReply, error) {
	client, err := GetClient(ctx)
	if err != nil {
		return nil, err
	}

	session, err := client.Live.Connect(ctx, a.models.LiveModel, &genai.LiveConnectConfig{
		ResponseModalities:       []genai.Modality{genai.ModalityAudio},
		SystemInstruction:        genai.NewContentFromText(systemPrompt, genai.RoleUser),
		InputAudioTranscription:  &genai.AudioTranscriptionConfig{},
		OutputAudioTranscription: &genai.AudioTranscriptionConfig{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open live session: %w", err)
	}
	defer session.Close()

	a.metrics.LiveSessions.Inc()

	turn := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(audio, mimeType),
	}, genai.RoleUser)

	if err := session.SendClientContent(genai.LiveClientContentInput{
		Turns:        []*genai.Content{turn},
		TurnComplete: genai.Ptr(true),
	}); err != nil {
		return nil, fmt.Errorf("failed to send audio turn: %w", err)
	}

	return collectLiveReply(session.Receive)
}

// collectLiveReply drains server messages until the turn completes. The
// output transcription is the authoritative reply text; model turn text
// parts are only used when no transcription was sent, since servers that
// send both repeat the same words.
func collectLiveReply(receive func() (*genai.LiveServerMessage, error)) (*AudioReply, error) {
	reply := &AudioReply{MIMEType: "audio/mpeg"}
	var outputTranscript, modelText string

	for {
		message, err := receive()
		if err != nil {
			return nil, fmt.Errorf("live session receive failed: %w", err)
		}

		content := message.ServerContent
		if content == nil {
			continue
		}

		if content.InputTranscription != nil {
			reply.Transcript += content.InputTranscription.Text
		}
		if content.OutputTranscription != nil {
			outputTranscript += content.OutputTranscription.Text
		}
		if content.ModelTurn != nil {
			for _, part := range content.ModelTurn.Parts {
				if part.InlineData != nil {
					reply.Audio = append(reply.Audio, part.InlineData.Data...)
				}
				if part.Text != "" {
					modelText += part.Text
				}
			}
		}

		if content.TurnComplete {
			break
		}
	}

	reply.Text = outputTranscript
	if reply.Text == "" {
		reply.Text = modelText
	}

	if len(reply.Audio) == 0 && reply.Text == "" {
		return nil, fmt.Errorf("live session returned an empty response")
	}
	return reply, nil
}

// generateReply is the non-streaming fallback path: one GenerateContent
// call returning the reply text
func (a *GeminiAssistant) generateReply(ctx context.Context, audio []byte, mimeType string) (string, error) {
	client, err := GetClient(ctx)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(systemPrompt),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, a.models.ChatModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("single-shot call failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("single-shot call returned an empty response")
	}
	return text, nil
}

// Synthesize converts reply text to speech with a single-shot TTS call
func (a *GeminiAssistant) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	client, err := GetClient(ctx)
	if err != nil {
		return nil, "", err
	}

	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: a.models.Voice},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, a.models.TTSModel, contents, cfg)
	if err != nil {
		return nil, "", fmt.Errorf("synthesis call failed: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, "audio/mpeg", nil
			}
		}
	}
	return nil, "", fmt.Errorf("synthesis returned no audio")
}

// Transcribe returns the transcript of an audio clip via a single-shot call
func (a *GeminiAssistant) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	client, err := GetClient(ctx)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText("Transcribe this audio verbatim. Reply with the transcript only."),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, a.models.ChatModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("transcription call failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("transcription returned an empty response")
	}
	return text, nil
}
