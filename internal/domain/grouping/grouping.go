// Package grouping buckets configuration entries into named editor sections.
package grouping

import (
	"slices"
	"strings"

	"github.com/bnema/pdm/internal/domain/entity"
)

// Bucket names used by the classifiers.
const (
	BucketCustom         = "Custom"
	BucketAuthentication = "Authentication"
	BucketBitcoinNode    = "Bitcoin Node"
	BucketNetwork        = "Network"
	BucketPayouts        = "Payouts"
	BucketGeneral        = "General Settings"
)

// Classifier maps a key without schema to a section name.
type Classifier func(key string) string

// CustomBucket puts every unknown key in the "Custom" section.
func CustomBucket(string) string {
	return BucketCustom
}

// rule is one keyword match; rules are evaluated in order and the first hit wins.
type rule struct {
	bucket   string
	prefixes []string
	contains []string
}

func (r rule) matches(key string) bool {
	for _, p := range r.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	for _, c := range r.contains {
		if strings.Contains(key, c) {
			return true
		}
	}
	return false
}

// keywordRules must stay in this order: "bitcoind.rpcpassword" is
// Authentication and "bitcoind.rpcport" is Bitcoin Node, not Network.
var keywordRules = []rule{
	{bucket: BucketAuthentication, contains: []string{"user", "pass", "auth"}},
	{bucket: BucketBitcoinNode, prefixes: []string{"bitcoind"}},
	{bucket: BucketNetwork, contains: []string{"port", "address", "listen"}},
	{bucket: BucketPayouts, contains: []string{"payout", "wallet"}},
}

// KeywordBuckets classifies a key by naming convention (p2pool style).
func KeywordBuckets(key string) string {
	for _, r := range keywordRules {
		if r.matches(key) {
			return r.bucket
		}
	}
	return BucketGeneral
}

// ClassifierFor returns the unknown-key classifier used for a daemon role.
func ClassifierFor(role entity.DaemonRole) Classifier {
	if role == entity.DaemonRoleP2Pool {
		return KeywordBuckets
	}
	return CustomBucket
}

// SectionName returns the section an entry belongs to.
func SectionName(entry *entity.ConfigEntry, classify Classifier) string {
	if entry.Schema != nil {
		return entry.Schema.Section
	}
	if classify == nil {
		classify = CustomBucket
	}
	return classify(entry.Key)
}

// Group buckets entries into sections sorted by name.
// Entries keep their input order inside a section.
func Group(entries []*entity.ConfigEntry, classify Classifier) []entity.ConfigSection {
	var order []string
	buckets := make(map[string][]*entity.ConfigEntry)

	for _, entry := range entries {
		name := SectionName(entry, classify)
		if _, ok := buckets[name]; !ok {
			order = append(order, name)
		}
		buckets[name] = append(buckets[name], entry)
	}

	slices.Sort(order)

	sections := make([]entity.ConfigSection, 0, len(order))
	for _, name := range order {
		sections = append(sections, entity.ConfigSection{Name: name, Items: buckets[name]})
	}
	return sections
}
