// LingoTeach - language-teaching voice skill backend
// License: MIT

package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lingoteach/lingoteach/pkg/alexa"
	"github.com/lingoteach/lingoteach/pkg/catalog"
	"github.com/lingoteach/lingoteach/pkg/config"
)

func newInvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Send one simulated request through the router and print the response",
		RunE:  runInvoke,
	}
	cmd.Flags().StringP("type", "t", alexa.TypeIntentRequest, "Request type (LaunchRequest, IntentRequest, SessionEndedRequest)")
	cmd.Flags().StringP("intent", "i", alexa.IntentAsk, "Intent name for IntentRequest")
	cmd.Flags().StringP("phrase", "p", "", "Phrase slot value for AskIntent")
	cmd.Flags().StringP("language", "l", "", "Language code slot for SetLanguage (e.g. ja)")
	cmd.Flags().StringP("device", "d", "local-device", "Device identifier")
	return cmd
}

func runInvoke(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rt, cleanup, err := buildRouter(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	reqType, _ := cmd.Flags().GetString("type")
	intent, _ := cmd.Flags().GetString("intent")
	phrase, _ := cmd.Flags().GetString("phrase")
	language, _ := cmd.Flags().GetString("language")
	device, _ := cmd.Flags().GetString("device")

	env, err := buildEnvelope(reqType, intent, phrase, language, device)
	if err != nil {
		return err
	}

	resp := rt.Route(cmd.Context(), env)

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// buildEnvelope fabricates the envelope the platform would send for the
// given request shape, including an exact-match resolution for SetLanguage.
func buildEnvelope(reqType, intent, phrase, language, device string) (*alexa.RequestEnvelope, error) {
	env := &alexa.RequestEnvelope{
		Version: "1.0",
		Session: &alexa.Session{
			New:       true,
			SessionID: "simulated.session." + uuid.NewString(),
		},
		Context: alexa.Context{
			System: alexa.System{Device: alexa.Device{DeviceID: device}},
		},
		Request: alexa.Request{
			Type:      reqType,
			RequestID: "simulated.request." + uuid.NewString(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Locale:    "en-US",
		},
	}

	if reqType != alexa.TypeIntentRequest {
		return env, nil
	}

	env.Request.Intent = &alexa.Intent{Name: intent, Slots: map[string]alexa.Slot{}}

	switch intent {
	case alexa.IntentAsk:
		env.Request.Intent.Slots["phrase"] = alexa.Slot{Name: "phrase", Value: phrase}
	case alexa.IntentSetLanguage:
		lang, ok := catalog.Lookup(language)
		if !ok {
			// Simulate the platform failing to resolve the spoken value.
			env.Request.Intent.Slots["language"] = alexa.Slot{
				Name:  "language",
				Value: language,
				Resolutions: &alexa.Resolutions{
					ResolutionsPerAuthority: []alexa.Resolution{
						{Status: alexa.ResolutionStatus{Code: "ER_SUCCESS_NO_MATCH"}},
					},
				},
			}
			return env, nil
		}
		env.Request.Intent.Slots["language"] = alexa.Slot{
			Name:  "language",
			Value: lang.Name,
			Resolutions: &alexa.Resolutions{
				ResolutionsPerAuthority: []alexa.Resolution{
					{
						Status: alexa.ResolutionStatus{Code: alexa.StatusMatch},
						Values: []alexa.ResolutionValue{
							{Value: alexa.SlotValue{Name: lang.Name, ID: lang.Code}},
						},
					},
				},
			},
		}
	}

	return env, nil
}
