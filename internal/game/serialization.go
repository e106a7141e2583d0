package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// SerializationChecksum is a deterministic fingerprint of a match view. Two
// views of the same state hash identically, so clients and replays can detect
// divergence cheaply.
type SerializationChecksum struct {
	Hash      string
	Timestamp string
	Version   int
}

// ComputeChecksum hashes the canonical representation of the view.
// Generated ids (match, card instance, effect) and timestamps are left out.
func (v *MatchView) ComputeChecksum() (*SerializationChecksum, error) {
	hash := sha256.New()
	if _, err := hash.Write([]byte(v.buildDeterministicRepresentation())); err != nil {
		return nil, fmt.Errorf("failed to compute hash: %w", err)
	}
	return &SerializationChecksum{
		Hash:      hex.EncodeToString(hash.Sum(nil)),
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Version:   1,
	}, nil
}

func (v *MatchView) buildDeterministicRepresentation() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "MATCH:%s|%t|%d|%d|%s|%s\n",
		v.Lifecycle, v.Training, v.Round, v.TurnNumber, v.CurrentPlayerID, v.WinnerID)
	if v.Domain != nil {
		fmt.Fprintf(&buf, "DOMAIN:%s|%s|%s\n", v.Domain.CardID, v.Domain.OwnerID, v.Domain.Effect)
	}

	// Seat order matters, so players are not sorted.
	for _, p := range v.Players {
		fmt.Fprintf(&buf, "PLAYER:%s|%s|%d/%d|%d/%d|%d|%s|%d|%d|%t\n",
			p.ID, p.CharacterID, p.HP, p.MaxHP, p.Energy, p.MaxEnergy,
			p.Block, p.Status, p.DeckSize, p.LastDiscardRound, p.Dummy)

		buf.WriteString("  HAND:")
		buf.WriteString(strings.Join(sortedCardKeys(p.Hand), ","))
		buf.WriteString("\n  DISCARD:")
		buf.WriteString(strings.Join(sortedCardKeys(p.Discard), ","))
		buf.WriteString("\n")

		effects := make([]string, 0, len(p.Effects))
		for _, e := range p.Effects {
			effects = append(effects, fmt.Sprintf("%s=%d/%d@%s>%s", e.Kind, e.Duration, e.Value, e.SourceID, e.TargetID))
		}
		sort.Strings(effects)
		for _, e := range effects {
			fmt.Fprintf(&buf, "  EFFECT:%s\n", e)
		}
		for _, c := range p.Counters {
			fmt.Fprintf(&buf, "  COUNTER:%s=%d\n", c.Name, c.Count)
		}
	}

	// The log is append-only; its order is part of the state.
	for i, line := range v.Log {
		fmt.Fprintf(&buf, "LOG:%d:%s\n", i, line)
	}
	return buf.String()
}

func sortedCardKeys(cards []CardView) []string {
	keys := make([]string, 0, len(cards))
	for _, c := range cards {
		keys = append(keys, fmt.Sprintf("%s:%d:%t", c.CardID, c.Cost, c.Copied))
	}
	sort.Strings(keys)
	return keys
}

// VerifyChecksum reports whether the view still hashes to expected.
func (v *MatchView) VerifyChecksum(expected *SerializationChecksum) (bool, error) {
	computed, err := v.ComputeChecksum()
	if err != nil {
		return false, fmt.Errorf("failed to compute checksum: %w", err)
	}
	return computed.Hash == expected.Hash, nil
}

// SerializeToBytes gob-encodes the view.
func (v *MatchView) SerializeToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode view: %w", err)
	}
	return buf.Bytes(), nil
}

// DeserializeFromBytes decodes a view written by SerializeToBytes.
func DeserializeFromBytes(data []byte) (*MatchView, error) {
	var v MatchView
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode view: %w", err)
	}
	return &v, nil
}

// ValidateSerializationRoundtrip checks that encoding and decoding the view
// loses nothing that the checksum covers.
func ValidateSerializationRoundtrip(v *MatchView) error {
	original, err := v.ComputeChecksum()
	if err != nil {
		return fmt.Errorf("failed to compute original checksum: %w", err)
	}
	data, err := v.SerializeToBytes()
	if err != nil {
		return fmt.Errorf("failed to serialize: %w", err)
	}
	decoded, err := DeserializeFromBytes(data)
	if err != nil {
		return fmt.Errorf("failed to deserialize: %w", err)
	}
	roundtrip, err := decoded.ComputeChecksum()
	if err != nil {
		return fmt.Errorf("failed to compute deserialized checksum: %w", err)
	}
	if original.Hash != roundtrip.Hash {
		return fmt.Errorf("checksum mismatch: original=%s, deserialized=%s", original.Hash, roundtrip.Hash)
	}
	return nil
}
