package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/GoodPie/aihl-media-app/internal/metrics"
	"github.com/GoodPie/aihl-media-app/internal/notifier"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending event broadcasts to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendEventBroadcast implements the Notifier interface.
func (s *Notifier) SendEventBroadcast(b *notifier.Broadcast, dryRun bool) error {
	msg := s.formatEventBroadcast(b)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatEventBroadcast creates the Slack message for a game event using Block Kit.
func (s *Notifier) formatEventBroadcast(b *notifier.Broadcast) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	headerText := slack.NewTextBlockObject("plain_text", eventHeadline(b.EventType), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Body - the generated announcement text.
	if b.Text != "" {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", b.Text, true, false), nil, nil))
	}

	// Context - single-line scoreboard.
	var contextElements []slack.MixedElement
	if b.HomeTeamName != "" && b.AwayTeamName != "" {
		scoreLine := fmt.Sprintf("%s %d - %d %s", b.HomeTeamName, b.HomeScore, b.AwayScore, b.AwayTeamName)
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", scoreLine, true, false))
	}
	if b.PeriodLabel != "" && b.TimeRemaining != "" {
		clockLine := fmt.Sprintf("%s remaining in the %s", b.TimeRemaining, b.PeriodLabel)
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", clockLine, true, false))
	}
	if len(contextElements) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}

// eventHeadline picks the header line for a broadcast based on its event type.
func eventHeadline(eventType string) string {
	switch strings.ToUpper(eventType) {
	case "GOAL":
		return "🚨 GOAL! 🚨"
	case "PENALTY":
		return "📣 Penalty called"
	case "PERIOD_START":
		return "🏒 Period underway"
	case "PERIOD_END":
		return "🏒 End of period"
	case "GAME_START":
		return "🏒 Game on!"
	case "GAME_END":
		return "🏒 Final score"
	default:
		return "🏒 Game update"
	}
}
