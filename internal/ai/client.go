// Package ai turns free-form text into a candidate transaction line. The
// feature is optional; the bot runs without it.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

const systemPromptTemplate = `Kamu adalah asisten pencatat keuangan. Ubah kalimat pengguna menjadi satu baris transaksi dengan format persis:

deskripsi, kategori_nomor, nominal, saldo_nomor

Daftar kategori:
%s

Daftar saldo:
%s

Aturan:
- Jawab HANYA dengan baris transaksi tersebut, tanpa penjelasan.
- nominal adalah angka tanpa "Rp" dan tanpa pemisah ribuan.
- Jika kalimat tidak menyebut transaksi keuangan, jawab persis: TIDAK_PAHAM`

// SuggestLine asks the model for a transaction line matching the user's
// sentence. It returns ok=false when the model could not find one.
func (c *Client) SuggestLine(ctx context.Context, text, categoryList, walletList string) (string, bool, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(systemPromptTemplate, categoryList, walletList),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", false, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", false, fmt.Errorf("empty completion response")
	}

	line := strings.TrimSpace(resp.Choices[0].Message.Content)
	if line == "" || strings.Contains(line, "TIDAK_PAHAM") {
		return "", false, nil
	}
	return line, true, nil
}
