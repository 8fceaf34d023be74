package correction

import "context"

// maxPromptCorrections bounds the rules fetched for initial-prompt
// construction; the prompt only needs the most relevant terms.
const maxPromptCorrections = 200

// PromptTermSource adapts the correction agent into the transcription
// backend's term source. It returns both original and corrected spellings
// so the engine recognizes either form.
type PromptTermSource struct {
	agent Agent
}

// NewPromptTermSource wraps the agent.
func NewPromptTermSource(agent Agent) *PromptTermSource {
	return &PromptTermSource{agent: agent}
}

// KnownTerms fetches the client's stored correction rules, plus
// project-scoped ones when projectID is set.
func (s *PromptTermSource) KnownTerms(ctx context.Context, clientID, projectID string) ([]string, error) {
	resp, err := s.agent.ListCorrections(ctx, &ListCorrectionsRequest{
		ClientID:   clientID,
		MaxResults: maxPromptCorrections,
	})
	if err != nil {
		return nil, err
	}

	terms := collectTerms(resp.Corrections, nil)

	if projectID != "" {
		projectResp, err := s.agent.ListCorrections(ctx, &ListCorrectionsRequest{
			ClientID:   clientID,
			ProjectID:  projectID,
			MaxResults: maxPromptCorrections,
		})
		if err != nil {
			return nil, err
		}
		terms = collectTerms(projectResp.Corrections, terms)
	}
	return terms, nil
}

func collectTerms(corrections []StoredCorrection, terms []string) []string {
	for _, c := range corrections {
		if c.Metadata.Original != "" {
			terms = append(terms, c.Metadata.Original)
		}
		if c.Metadata.Corrected != "" {
			terms = append(terms, c.Metadata.Corrected)
		}
	}
	return terms
}
