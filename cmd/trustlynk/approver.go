package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goodnatureofminers/trustlynk-backend/internal/currency"
	"github.com/goodnatureofminers/trustlynk-backend/internal/wallet"
)

// terminalApprover asks on out and reads the answer from in. Anything but y/yes declines.
func terminalApprover(in io.Reader, out io.Writer) wallet.ApproverFunc {
	reader := bufio.NewReader(in)
	return func(ctx context.Context, req wallet.SignRequest) (bool, error) {
		fmt.Fprintf(out, "Sign transaction %s\n  account:    %s\n  operations: %d\n  base fee:   %s\nApprove? [y/N] ",
			req.Hash, req.Address, req.Operations, currency.FormatXLM(req.Fee))

		answer, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}
