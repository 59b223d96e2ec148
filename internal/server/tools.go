package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"followup/internal/domain"
	"followup/internal/logging"
)

const askDescription = `Ask the user a follow-up question in an interactive terminal window.

Use this before concluding any task and after each significant step: present
what was done and let the user pick an option, edit one, or type a custom
response. Keep asking until the user explicitly chooses to finish.

The prompt supports arrow-key selection, Tab to switch to free-text input,
F2 to edit the highlighted option, and Enter to submit.`

const confirmDescription = `Confirm task completion with the user before finishing.

Opens the standard completion prompt asking whether the work is done or still
needs changes. Use it before concluding any piece of work.`

func askTool(defaultTimeoutMinutes int) mcp.Tool {
	return mcp.NewTool("ask_followup_question",
		mcp.WithDescription(askDescription),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("The follow-up question to ask the user"),
		),
		mcp.WithArray("options",
			mcp.Description("Suggested options, 3-5 clear actionable choices. Always include an option to finish."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithNumber("timeout_minutes",
			mcp.Description(fmt.Sprintf("How long to wait for the user, in minutes. Values under 1 wait indefinitely, values over 1440 are capped. Defaults to %d.", defaultTimeoutMinutes)),
		),
	)
}

func confirmTool() mcp.Tool {
	return mcp.NewTool("confirm_completion",
		mcp.WithDescription(confirmDescription),
		mcp.WithString("task_summary",
			mcp.Required(),
			mcp.Description("Brief summary of what was accomplished"),
		),
	)
}

func (s *Server) handleAsk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	options := request.GetStringSlice("options", nil)
	minutes := request.GetFloat("timeout_minutes", float64(s.settings.TimeoutMinutes))
	timeout := time.Duration(minutes * float64(time.Minute))

	logging.Logger.Info("Tool call",
		"tool", "ask_followup_question",
		"options", len(options),
		"timeout_minutes", minutes)

	result, err := s.asker.Ask(ctx, question, options, timeout)
	return envelope(result, err, timeout), nil
}

func (s *Server) handleConfirm(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary, err := request.RequireString("task_summary")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	logging.Logger.Info("Tool call", "tool", "confirm_completion")

	result, err := s.asker.ConfirmCompletion(ctx, summary)
	return envelope(result, err, s.settings.Timeout()), nil
}

type successEnvelope struct {
	Status       string `json:"status"`
	UserResponse string `json:"user_response"`
	Message      string `json:"message"`
}

type cancelledEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error           string `json:"error"`
	Message         string `json:"message,omitempty"`
	FallbackMessage string `json:"fallback_message,omitempty"`
}

// envelope renders an outcome in the tool's JSON result shapes. Failures are
// reported inside the result text so the caller can react to them; they are
// not protocol errors.
func envelope(result domain.Result, err error, timeout time.Duration) *mcp.CallToolResult {
	switch {
	case errors.Is(err, domain.ErrTimeout):
		return jsonResult(errorEnvelope{
			Error:   "Timeout waiting for user response",
			Message: fmt.Sprintf("No response received within %s. Please try again.", timeoutPhrase(timeout)),
		})
	case errors.Is(err, domain.ErrNoTerminalAvailable), errors.Is(err, domain.ErrLaunchFailed):
		return jsonResult(errorEnvelope{
			Error:           "Failed to launch terminal. Please ensure you have terminal access.",
			FallbackMessage: "Unable to get user input. Assuming 'Continue' as default response.",
		})
	case err != nil:
		return jsonResult(errorEnvelope{
			Error:   err.Error(),
			Message: "An error occurred while processing the follow-up question",
		})
	case result.Answered():
		return jsonResult(successEnvelope{
			Status:       "success",
			UserResponse: result.Text,
			Message:      "User selected: " + result.Text,
		})
	default:
		return jsonResult(cancelledEnvelope{
			Status:  "cancelled",
			Message: "User cancelled the follow-up question",
		})
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

func timeoutPhrase(timeout time.Duration) string {
	minutes := int(domain.NormalizeTimeout(timeout) / time.Minute)
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}
