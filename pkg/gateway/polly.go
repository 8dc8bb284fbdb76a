// LingoTeach - language-teaching voice skill backend
// License: MIT

package gateway

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"

	"github.com/lingoteach/lingoteach/pkg/logger"
)

// Audio output parameters for every synthesis request.
const (
	outputFormat = types.OutputFormatMp3
	sampleRate   = "22050"
)

// PollySpeaker synthesizes speech through the AWS Polly service.
type PollySpeaker struct {
	client *polly.Client
}

func NewPollySpeaker(cfg aws.Config) *PollySpeaker {
	return &PollySpeaker{client: polly.NewFromConfig(cfg)}
}

func (s *PollySpeaker) Synthesize(ctx context.Context, ssml, voice string) ([]byte, error) {
	out, err := s.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		OutputFormat: outputFormat,
		SampleRate:   aws.String(sampleRate),
		Text:         aws.String(ssml),
		TextType:     types.TextTypeSsml,
		VoiceId:      types.VoiceId(voice),
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	defer out.AudioStream.Close()

	audio, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("read audio stream: %w", err)
	}

	logger.DebugCF("gateway", "Synthesized speech", map[string]any{
		"voice":      voice,
		"size_bytes": len(audio),
	})

	return audio, nil
}
