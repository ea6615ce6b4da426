package httpadapter

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

type accountMeta struct {
	Pubkey     solana.PublicKey `json:"pubkey"`
	IsSigner   bool             `json:"is_signer"`
	IsWritable bool             `json:"is_writable"`
}

// InstructionRequest is the wire form of a raw program instruction. Data is
// base64 unless Encoding is "base58".
type InstructionRequest struct {
	ProgramID solana.PublicKey `json:"program_id"`
	Accounts  []accountMeta    `json:"accounts"`
	Data      string           `json:"data"`
	Encoding  string           `json:"encoding,omitempty"`
}

// NewInstructionRequest converts ix into its wire form.
func NewInstructionRequest(ix solana.Instruction) (InstructionRequest, error) {
	data, err := ix.Data()
	if err != nil {
		return InstructionRequest{}, err
	}
	req := InstructionRequest{
		ProgramID: ix.ProgramID(),
		Data:      base64.StdEncoding.EncodeToString(data),
		Encoding:  "base64",
	}
	for _, m := range ix.Accounts() {
		req.Accounts = append(req.Accounts, accountMeta{Pubkey: m.PublicKey, IsSigner: m.IsSigner, IsWritable: m.IsWritable})
	}
	return req, nil
}

func (req InstructionRequest) instruction(defaultProgram solana.PublicKey) (solana.Instruction, error) {
	var (
		data []byte
		err  error
	)
	switch req.Encoding {
	case "", "base64":
		data, err = base64.StdEncoding.DecodeString(req.Data)
	case "base58":
		data, err = base58.Decode(req.Data)
	default:
		return nil, fmt.Errorf("unsupported encoding %q", req.Encoding)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid instruction data: %w", err)
	}
	program := req.ProgramID
	if program.IsZero() {
		program = defaultProgram
	}
	metas := make([]*solana.AccountMeta, 0, len(req.Accounts))
	for _, a := range req.Accounts {
		metas = append(metas, &solana.AccountMeta{PublicKey: a.Pubkey, IsSigner: a.IsSigner, IsWritable: a.IsWritable})
	}
	return &solana.GenericInstruction{ProgID: program, AccountValues: metas, DataBytes: data}, nil
}

// handleInstruction runs a raw program instruction.
func (h *Handler) handleInstruction(w http.ResponseWriter, r *http.Request) {
	var req InstructionRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeBadRequest(w, "invalid JSON")
		return
	}
	ix, err := req.instruction(h.svc.ProgramID())
	h.execute(w, r, "instruction", http.StatusOK, ix, err)
}
