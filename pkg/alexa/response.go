// LingoTeach - language-teaching voice skill backend
// License: MIT

package alexa

import "strings"

type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	SSML string `json:"ssml,omitempty"`
}

type Reprompt struct {
	OutputSpeech *OutputSpeech `json:"outputSpeech,omitempty"`
}

type Card struct {
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Image *Image `json:"image,omitempty"`
}

type Image struct {
	SmallImageURL string `json:"smallImageUrl,omitempty"`
	LargeImageURL string `json:"largeImageUrl,omitempty"`
}

// ResponseBuilder assembles a ResponseEnvelope the way the platform SDK
// builders do. A response with no reprompt ends the session.
type ResponseBuilder struct {
	env ResponseEnvelope
}

func NewResponseBuilder() *ResponseBuilder {
	return &ResponseBuilder{
		env: ResponseEnvelope{
			Version:  "1.0",
			Response: Response{ShouldEndSession: true},
		},
	}
}

// Speak sets the output speech. The text may contain SSML fragments such as
// <audio/>; it is wrapped in a <speak> root unless one is already present.
func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.env.Response.OutputSpeech = &OutputSpeech{Type: "SSML", SSML: wrapSSML(text)}
	return b
}

// Reprompt sets the reprompt speech and keeps the session open.
func (b *ResponseBuilder) Reprompt(text string) *ResponseBuilder {
	b.env.Response.Reprompt = &Reprompt{
		OutputSpeech: &OutputSpeech{Type: "SSML", SSML: wrapSSML(text)},
	}
	b.env.Response.ShouldEndSession = false
	return b
}

// WithStandardCard attaches a visual card with small and large images.
func (b *ResponseBuilder) WithStandardCard(title, text, smallImageURL, largeImageURL string) *ResponseBuilder {
	b.env.Response.Card = &Card{
		Type:  "Standard",
		Title: title,
		Text:  text,
		Image: &Image{SmallImageURL: smallImageURL, LargeImageURL: largeImageURL},
	}
	return b
}

// WithSessionAttributes carries session attributes back to the platform.
func (b *ResponseBuilder) WithSessionAttributes(attrs map[string]any) *ResponseBuilder {
	b.env.SessionAttributes = attrs
	return b
}

// Build returns the assembled envelope.
func (b *ResponseBuilder) Build() ResponseEnvelope {
	return b.env
}

// EmptyResponse is the bare envelope returned for SessionEndedRequest.
func EmptyResponse() ResponseEnvelope {
	return ResponseEnvelope{Version: "1.0", Response: Response{ShouldEndSession: true}}
}

func wrapSSML(text string) string {
	if strings.HasPrefix(text, "<speak>") {
		return text
	}
	return "<speak>" + text + "</speak>"
}
