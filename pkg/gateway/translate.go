// LingoTeach - language-teaching voice skill backend
// License: MIT

package gateway

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"

	"github.com/lingoteach/lingoteach/pkg/logger"
)

// AWSTranslator translates text through the AWS Translate service.
type AWSTranslator struct {
	client *translate.Client
}

func NewAWSTranslator(cfg aws.Config) *AWSTranslator {
	return &AWSTranslator{client: translate.NewFromConfig(cfg)}
}

func (t *AWSTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	out, err := t.client.TranslateText(ctx, &translate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(sourceLang),
		TargetLanguageCode: aws.String(targetLang),
	})
	if err != nil {
		return "", fmt.Errorf("translate text: %w", err)
	}

	logger.DebugCF("gateway", "Translated text", map[string]any{
		"source": sourceLang,
		"target": targetLang,
		"length": len(text),
	})

	return aws.ToString(out.TranslatedText), nil
}
