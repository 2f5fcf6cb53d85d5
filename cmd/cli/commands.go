package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(matchMakingCmd)
	rootCmd.AddCommand(calculateEloCmd)
	rootCmd.AddCommand(awardBadgeCmd)
	rootCmd.AddCommand(completeMatchCmd)
	rootCmd.AddCommand(respondChallengeCmd)
	rootCmd.AddCommand(presenceCmd)

	matchMakingCmd.Flags().Int("rating-range", 100, "Maximum rating difference to an opponent")
	matchMakingCmd.Flags().Float64("max-distance", 10, "Maximum distance to an opponent in km (0 disables the filter)")
	matchMakingCmd.Flags().String("match-type", "casual", "Type of match to search for")
	matchMakingCmd.Flags().Bool("challenge", false, "Challenge the best opponent")

	respondChallengeCmd.Flags().Bool("decline", false, "Decline instead of accepting")
	presenceCmd.Flags().Bool("offline", false, "Mark the player as offline")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var matchMakingCmd = &cobra.Command{
	Use:   "match-making <user-id>",
	Short: "Find opponents for a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ratingRange, _ := cmd.Flags().GetInt("rating-range")
		maxDistance, _ := cmd.Flags().GetFloat64("max-distance")
		matchType, _ := cmd.Flags().GetString("match-type")
		challenge, _ := cmd.Flags().GetBool("challenge")
		return performPostRequest("/match-making", map[string]any{
			"user_id":               args[0],
			"rating_range":          ratingRange,
			"max_distance_km":       maxDistance,
			"match_type":            matchType,
			"auto_create_challenge": challenge,
		})
	},
}

var calculateEloCmd = &cobra.Command{
	Use:   "calculate-elo <match-id> <winner-id>",
	Short: "Apply the rating change for a match",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/calculate-elo", map[string]any{"match_id": args[0], "winner_id": args[1]})
	},
}

var awardBadgeCmd = &cobra.Command{
	Use:   "award-badge <user-id>",
	Short: "Grant the badges a player has earned",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/award-badge", map[string]any{"user_id": args[0]})
	},
}

var completeMatchCmd = &cobra.Command{
	Use:   "complete-match <match-id> <player1-score> <player2-score>",
	Short: "Record the final score of a match",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var p1, p2 int
		if _, err := fmt.Sscan(args[1], &p1); err != nil {
			return fmt.Errorf("invalid player1 score %q: %w", args[1], err)
		}
		if _, err := fmt.Sscan(args[2], &p2); err != nil {
			return fmt.Errorf("invalid player2 score %q: %w", args[2], err)
		}
		return performPostRequest("/complete-match", map[string]any{"match_id": args[0], "player1_score": p1, "player2_score": p2})
	},
}

var respondChallengeCmd = &cobra.Command{
	Use:   "respond-challenge <challenge-id> <user-id>",
	Short: "Accept or decline a challenge",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		decline, _ := cmd.Flags().GetBool("decline")
		return performPostRequest("/respond-challenge", map[string]any{"challenge_id": args[0], "user_id": args[1], "accept": !decline})
	},
}

var presenceCmd = &cobra.Command{
	Use:   "presence <user-id>",
	Short: "Mark a player as online",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		offline, _ := cmd.Flags().GetBool("offline")
		return performPostRequest("/presence", map[string]any{"user_id": args[0], "online": !offline})
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	url := host + endpoint
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	var pretty bytes.Buffer
	if json.Indent(&pretty, body, "", "  ") == nil {
		fmt.Println(pretty.String())
	} else {
		fmt.Println(string(body))
	}
	return nil
}
