package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/api"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/svcctx"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/types"
)

// EnhanceRequest is the request body for text enhancement.
// ShowExplanations defaults to true when omitted.
type EnhanceRequest struct {
	Text             string `json:"text"`
	Tone             string `json:"tone,omitempty"`
	ShowExplanations *bool  `json:"showExplanations,omitempty"`
}

// EnhanceEndpoint handles POST /api/enhance.
type EnhanceEndpoint struct{}

func (e *EnhanceEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/enhance", e.handler
}

func (e *EnhanceEndpoint) RequiresInit() bool { return true }

func (e *EnhanceEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var req EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	enhancer := svcctx.EnhancerFrom(r.Context())
	if enhancer == nil {
		writeError(w, http.StatusServiceUnavailable, "enhancer not initialized")
		return
	}

	showExplanations := true
	if req.ShowExplanations != nil {
		showExplanations = *req.ShowExplanations
	}

	result := enhancer.Enhance(r.Context(), types.EnhancementRequest{
		Text:             req.Text,
		Tone:             types.ParseTone(req.Tone),
		ShowExplanations: showExplanations,
	})

	if result.Error != "" {
		writeError(w, http.StatusInternalServerError, result.Error)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (e *EnhanceEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		tone           string
		noExplanations bool
	)
	cmd := &cobra.Command{
		Use:   "enhance <text>",
		Short: "Correct and enhance a piece of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(args[0]) == "" {
				return fmt.Errorf("text must not be blank")
			}
			client := api.NewClient(getServerURL())
			show := !noExplanations
			var resp types.EnhancementResult
			req := EnhanceRequest{Text: args[0], Tone: tone, ShowExplanations: &show}
			if err := client.Post(cmd.Context(), "/api/enhance", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&tone, "tone", "original", "Writing tone: original, professional, casual, or academic")
	cmd.Flags().BoolVar(&noExplanations, "no-explanations", false, "Omit the list of improvements")
	return cmd
}
