package backend

// part is a single chunk of text in a Gemini content block.
type part struct {
	Text *string `json:"text,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

// generateRequest is the body of a generateContent call.
type generateRequest struct {
	SystemInstruction content          `json:"systemInstruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type candidate struct {
	Content *content `json:"content"`
}

// generateResponse only models the path we read; everything else is ignored.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

func textPart(s string) part {
	return part{Text: &s}
}
