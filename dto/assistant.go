package dto

type ClarifyRequestDTO struct {
	Snippet  string `json:"snippet" example:"The Fed held rates at 5.25%."`
	Question string `json:"question,omitempty" example:"How does this affect fundraising?"`
}

type ResearchRequestDTO struct {
	Question string `json:"question" example:"What is a SAFE note?"`
}

type SpeechRequestDTO struct {
	Text string `json:"text" example:"Today's edition in one minute."`
}
