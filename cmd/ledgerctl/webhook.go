package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// webhookDelivery is one simulated provider callback
type webhookDelivery struct {
	Provider    string
	TokenHeader string
	Body        []byte
}

// buildDelivery renders the body and auth header each provider sends for a settled payment
func buildDelivery(provider, externalID string, amount int64, paidAt time.Time) (webhookDelivery, error) {
	var (
		header string
		body   any
	)
	ts := paidAt.UTC().Format(time.RFC3339)

	switch provider {
	case "qrispolling":
		header = "X-Webhook-Token"
		body = map[string]any{
			"event": "transaction.status_updated",
			"data": map[string]any{
				"external_id":    externalID,
				"transaction_id": "sim-" + externalID,
				"status":         "paid",
				"amount":         amount,
				"paid_at":        ts,
				"payment_method": "QRIS",
			},
		}
	case "xendit":
		header = "X-Callback-Token"
		body = map[string]any{
			"id":              "sim-" + externalID,
			"external_id":     externalID,
			"status":          "PAID",
			"amount":          amount,
			"paid_amount":     amount,
			"paid_at":         ts,
			"payment_channel": "QRIS",
		}
	case "trakteer":
		header = "X-Webhook-Token"
		body = map[string]any{
			"transaction_id":    "sim-" + externalID,
			"supporter_name":    "ledgerctl",
			"supporter_message": externalID,
			"price":             amount,
			"created_at":        ts,
		}
	case "cashi":
		header = "X-Webhook-Token"
		body = map[string]any{
			"event": "PAYMENT_SETTLED",
			"data": map[string]any{
				"order_id":       externalID,
				"status":         "SETTLED",
				"amount":         amount,
				"provider_tx_id": "sim-" + externalID,
				"settled_at":     ts,
			},
		}
	default:
		return webhookDelivery{}, fmt.Errorf("unknown provider %q", provider)
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return webhookDelivery{}, err
	}
	return webhookDelivery{Provider: provider, TokenHeader: header, Body: raw}, nil
}

func (d webhookDelivery) send(ctx context.Context, client *http.Client, baseURL, token string) (int, string, error) {
	url := strings.TrimRight(baseURL, "/") + "/api/webhooks/" + d.Provider
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(d.Body)))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(d.TokenHeader, token)

	resp, err := client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return resp.StatusCode, string(body), nil
}

func webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-webhook <provider> <external-id>",
		Short: "Send a settled-payment webhook the way a provider would",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL, _ := cmd.Flags().GetString("url")
			token, _ := cmd.Flags().GetString("token")
			amount, _ := cmd.Flags().GetInt64("amount")

			delivery, err := buildDelivery(args[0], args[1], amount, time.Now())
			if err != nil {
				return err
			}
			status, body, err := delivery.send(cmd.Context(), &http.Client{Timeout: 10 * time.Second}, baseURL, token)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", status, body)
			if status >= http.StatusBadRequest {
				return fmt.Errorf("webhook rejected with status %d", status)
			}
			return nil
		},
	}

	cmd.Flags().String("token", envOr("CL_WEBHOOK_TOKEN", ""), "Webhook secret configured for the provider")
	cmd.Flags().Int64("amount", 0, "Paid amount in rupiah")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
