package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/roflkit/pkg/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseMetadata decodes the metadata region: a UTF-8 JSON object whose
// statsJson member is a string holding a second, backslash-escaped JSON
// array of player objects.
//
// Decoding happens in two stages. The outer object is parsed first, then
// every literal backslash is stripped from statsJson before the inner array
// is parsed. The escaping convention is fixed by the container, so the inner
// document is never decoded as a regular JSON string.
func ParseMetadata(b []byte) (types.MatchMetadata, error) {
	outer, err := decodeObject(decodeUTF8(bytes.TrimPrefix(b, utf8BOM)))
	if err != nil {
		return types.MatchMetadata{}, fmt.Errorf("%w: outer document: %v", ErrInvalidMetadata, err)
	}

	var md types.MatchMetadata
	if md.GameDuration, err = requireUint(outer, MetaGameLengthKey, 64); err != nil {
		return types.MatchMetadata{}, err
	}
	if md.GameVersion, err = requireString(outer, MetaGameVersionKey); err != nil {
		return types.MatchMetadata{}, err
	}
	chunk, err := requireUint(outer, MetaLastGameChunkIDKey, 32)
	if err != nil {
		return types.MatchMetadata{}, err
	}
	keyframe, err := requireUint(outer, MetaLastKeyFrameIDKey, 32)
	if err != nil {
		return types.MatchMetadata{}, err
	}
	md.LastGameChunkID = uint32(chunk)
	md.LastKeyframeID = uint32(keyframe)

	stats, err := requireString(outer, MetaStatsJSONKey)
	if err != nil {
		return types.MatchMetadata{}, err
	}
	players, err := ParseStats(stats)
	if err != nil {
		return types.MatchMetadata{}, err
	}
	md.BluePlayers, md.RedPlayers = PartitionTeams(players)
	return md, nil
}

// ParseStats unescapes and decodes the statsJson array into one Player per
// element, in source order.
func ParseStats(escaped string) ([]types.Player, error) {
	dec := json.NewDecoder(strings.NewReader(strings.ReplaceAll(escaped, `\`, "")))
	dec.UseNumber()
	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, MetaStatsJSONKey, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s: not an array", ErrInvalidMetadata, MetaStatsJSONKey)
	}

	players := make([]types.Player, 0, len(raw))
	for i, obj := range raw {
		if obj == nil {
			return nil, fmt.Errorf("%w: %s[%d]: not an object", ErrInvalidMetadata, MetaStatsJSONKey, i)
		}
		p := make(types.Player, len(obj))
		for k, v := range obj {
			s, err := statString(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d].%s: %v", ErrInvalidMetadata, MetaStatsJSONKey, i, k, err)
			}
			p[k] = s
		}
		players = append(players, p)
	}
	return players, nil
}

// PartitionTeams routes players by their TEAM stat, keeping source order.
// Players on any other team are dropped.
func PartitionTeams(players []types.Player) (blue, red []types.Player) {
	blue = []types.Player{}
	red = []types.Player{}
	for _, p := range players {
		switch p[StatTeam] {
		case TeamBlue:
			blue = append(blue, p)
		case TeamRed:
			red = append(red, p)
		}
	}
	return blue, red
}

func decodeObject(s string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("not an object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level object")
	}
	return obj, nil
}

func requireString(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidMetadata, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ErrInvalidMetadata, key, v)
	}
	return s, nil
}

// requireUint accepts a JSON number or a numeric string that fits in bits.
func requireUint(obj map[string]any, key string, bits int) (uint64, error) {
	v, ok := obj[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidMetadata, key)
	}
	var text string
	switch t := v.(type) {
	case json.Number:
		text = t.String()
	case string:
		text = strings.TrimSpace(t)
	default:
		return 0, fmt.Errorf("%w: %s is %T, want integer", ErrInvalidMetadata, key, v)
	}
	n, err := parseUint(text, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidMetadata, key, err)
	}
	return n, nil
}

// parseUint parses an unsigned integer, also accepting integral numbers
// written in float notation such as "1.5e3".
func parseUint(text string, bits int) (uint64, error) {
	if n, err := strconv.ParseUint(text, 10, bits); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f >= math.Ldexp(1, bits) {
		return 0, fmt.Errorf("%q is not an unsigned %d-bit integer", text, bits)
	}
	return uint64(f), nil
}

// statString renders a player stat as text. Nested values are rejected.
func statString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("nested %T value", v)
	}
}
