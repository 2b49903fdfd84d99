package service

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jjenkins/clients/internal/model"
)

// clientJSON is the wire shape of a client record in seed files and feeds
type clientJSON struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Email     string `json:"email"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ParsedRecord is a decoded client record with the checksum of its source form
type ParsedRecord struct {
	Record   model.ClientRecord
	Checksum string
}

// ParseResult contains the records decoded from a client list document
type ParseResult struct {
	Records []ParsedRecord
}

// ClientRecords returns just the decoded records, in document order
func (r *ParseResult) ClientRecords() []model.ClientRecord {
	records := make([]model.ClientRecord, len(r.Records))
	for i, pr := range r.Records {
		records[i] = pr.Record
	}
	return records
}

// Parser decodes client list documents
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a JSON array of client records. Ids must be unique.
func (p *Parser) Parse(content []byte) (*ParseResult, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse client list: %w", err)
	}

	result := &ParseResult{Records: make([]ParsedRecord, 0, len(raw))}
	seen := make(map[int]bool, len(raw))

	for i, msg := range raw {
		var c clientJSON
		if err := json.Unmarshal(msg, &c); err != nil {
			return nil, fmt.Errorf("failed to parse client at index %d: %w", i, err)
		}

		record, err := c.toRecord()
		if err != nil {
			return nil, fmt.Errorf("invalid client at index %d: %w", i, err)
		}
		if seen[record.ID] {
			return nil, fmt.Errorf("duplicate client id %d", record.ID)
		}
		seen[record.ID] = true

		result.Records = append(result.Records, ParsedRecord{
			Record:   record,
			Checksum: p.calculateChecksum(record),
		})
	}

	return result, nil
}

func (c clientJSON) toRecord() (model.ClientRecord, error) {
	clientType := model.ClientType(c.Type)
	if !clientType.Valid() {
		return model.ClientRecord{}, fmt.Errorf("unknown client type %q", c.Type)
	}

	status := model.ClientStatus(c.Status)
	if !status.Valid() {
		return model.ClientRecord{}, fmt.Errorf("unknown status %q", c.Status)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, c.CreatedAt)
	if err != nil {
		return model.ClientRecord{}, fmt.Errorf("invalid createdAt: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, c.UpdatedAt)
	if err != nil {
		return model.ClientRecord{}, fmt.Errorf("invalid updatedAt: %w", err)
	}

	return model.ClientRecord{
		ID:        c.ID,
		Name:      c.Name,
		Type:      clientType,
		Email:     c.Email,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// calculateChecksum computes an MD5 hash of the record's canonical form
func (p *Parser) calculateChecksum(r model.ClientRecord) string {
	canonical := fmt.Sprintf("%d|%s|%s|%s|%s|%s|%s",
		r.ID, r.Name, r.Type, r.Email, r.Status,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
		r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	hash := md5.Sum([]byte(canonical))
	return hex.EncodeToString(hash[:])
}
