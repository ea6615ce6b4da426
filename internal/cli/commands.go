package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/spf13/cobra"

	httpadapter "adcustody/internal/adapter/http"
	"adcustody/internal/core/instruction"
	"adcustody/internal/core/pda"
	"adcustody/internal/core/port"
)

func printJSON(cmd *cobra.Command, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}

func newDeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Print the campaign and vault addresses of a campaign id",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGlobals(cmd)
			if err != nil {
				return err
			}
			id, err := cmd.Flags().GetUint64("campaign-id")
			if err != nil {
				return fmt.Errorf("failed to get campaign-id flag: %w", err)
			}
			campaign, campaignBump, err := pda.DeriveCampaignAddress(g.programID, id)
			if err != nil {
				return fmt.Errorf("failed to derive campaign address: %w", err)
			}
			vault, vaultBump, err := pda.DeriveVaultAddress(g.programID, id)
			if err != nil {
				return fmt.Errorf("failed to derive vault address: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "campaign  %s  bump %d\n", campaign, campaignBump)
			fmt.Fprintf(out, "vault     %s  bump %d\n", vault, vaultBump)
			return nil
		},
	}
	cmd.Flags().Uint64("campaign-id", 0, "campaign id")
	_ = cmd.MarkFlagRequired("campaign-id")
	return cmd
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a campaign and its vault balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGlobals(cmd)
			if err != nil {
				return err
			}
			id, err := cmd.Flags().GetUint64("campaign-id")
			if err != nil {
				return fmt.Errorf("failed to get campaign-id flag: %w", err)
			}
			g.logger.Debug("fetching campaign", slog.Uint64("campaign_id", id), slog.String("server", g.server))
			raw, err := newClient(g.server).do(cmd.Context(), http.MethodGet, fmt.Sprintf("/api/v1/campaigns/%d", id), nil)
			if err != nil {
				return err
			}
			return printJSON(cmd, raw)
		},
	}
	cmd.Flags().Uint64("campaign-id", 0, "campaign id")
	_ = cmd.MarkFlagRequired("campaign-id")
	return cmd
}

// submit posts ix to the service's instruction endpoint and prints the
// receipt.
func submit(cmd *cobra.Command, g globals, ix solana.Instruction) error {
	req, err := httpadapter.NewInstructionRequest(ix)
	if err != nil {
		return fmt.Errorf("failed to encode instruction: %w", err)
	}
	g.logger.Debug("submitting instruction", slog.String("program_id", g.programID.String()), slog.String("data", req.Data))
	raw, err := newClient(g.server).do(cmd.Context(), http.MethodPost, "/api/v1/instructions", req)
	if err != nil {
		return err
	}
	g.logger.Info("instruction executed")
	return printJSON(cmd, raw)
}

func newPayPublisherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay-publisher",
		Short: "Pay a publisher for verified clicks",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGlobals(cmd)
			if err != nil {
				return err
			}
			id, err := cmd.Flags().GetUint64("campaign-id")
			if err != nil {
				return fmt.Errorf("failed to get campaign-id flag: %w", err)
			}
			clicks, err := cmd.Flags().GetUint64("clicks")
			if err != nil {
				return fmt.Errorf("failed to get clicks flag: %w", err)
			}
			publisher, err := publicKeyFlag(cmd, "publisher")
			if err != nil {
				return err
			}
			ix, err := instruction.BuildPayPublisher(g.programID, publisher, port.PayPublisherArgs{CampaignID: id, Clicks: clicks})
			if err != nil {
				return err
			}
			return submit(cmd, g, ix)
		},
	}
	cmd.Flags().Uint64("campaign-id", 0, "campaign id")
	cmd.Flags().Uint64("clicks", 0, "verified clicks to pay for")
	cmd.Flags().String("publisher", "", "publisher identity")
	_ = cmd.MarkFlagRequired("campaign-id")
	_ = cmd.MarkFlagRequired("clicks")
	_ = cmd.MarkFlagRequired("publisher")
	return cmd
}

func newPayCommissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay-commission",
		Short: "Settle the operator commission of a campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGlobals(cmd)
			if err != nil {
				return err
			}
			id, err := cmd.Flags().GetUint64("campaign-id")
			if err != nil {
				return fmt.Errorf("failed to get campaign-id flag: %w", err)
			}
			percentage, err := cmd.Flags().GetUint64("percentage")
			if err != nil {
				return fmt.Errorf("failed to get percentage flag: %w", err)
			}
			operator, err := publicKeyFlag(cmd, "operator")
			if err != nil {
				return err
			}
			ix, err := instruction.BuildPayCommission(g.programID, operator, port.PayCommissionArgs{CampaignID: id, Percentage: percentage})
			if err != nil {
				return err
			}
			return submit(cmd, g, ix)
		},
	}
	cmd.Flags().Uint64("campaign-id", 0, "campaign id")
	cmd.Flags().Uint64("percentage", 100, "commission percentage, 0 to 100")
	cmd.Flags().String("operator", "", "operator identity")
	_ = cmd.MarkFlagRequired("campaign-id")
	_ = cmd.MarkFlagRequired("operator")
	return cmd
}
