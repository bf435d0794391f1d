package reconcile

import (
	"context"
	"sort"
	"strings"

	"luxora/models"
	"luxora/utils"

	"go.uber.org/zap"
)

// NormalizeDirectory merges duplicate client records sharing the same
// identity key (case-insensitive email) into one canonical record and
// deletes the rest. Operators re-run this after partial failures, so a
// second run over normalized data must produce no further actions.
func (g *Guard) NormalizeDirectory(ctx context.Context, scope models.Scope, apply bool) (*Report, error) {
	if scope.IsZero() {
		return nil, ErrMissingScope()
	}
	logger := utils.GetLogger()
	report := &Report{Applied: apply}

	clients, err := g.Clients.GetByCompanyID(ctx, scope.CompanyID)
	if err != nil {
		return nil, err
	}

	groups := map[string][]models.Client{}
	for _, client := range clients {
		if !scope.Allows(client.CompanyID) {
			logger.Warn("cross-tenant client record skipped",
				zap.String("clientId", client.ID))
			report.log("skip", "client", client.ID, "outside company scope")
			continue
		}
		key := strings.ToLower(strings.TrimSpace(client.Email))
		if key == "" {
			report.log("skip", "client", client.ID, "no identity key (empty email)")
			report.Unresolved++
			continue
		}
		groups[key] = append(groups[key], client)
	}

	for key, group := range groups {
		if len(group) < 2 {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			si, sj := recordScore(group[i]), recordScore(group[j])
			if si != sj {
				return si > sj
			}
			return group[i].CreatedAt.Before(group[j].CreatedAt)
		})

		canonical := mergeClients(group)
		report.log("merge", "client", canonical.ID, "canonical for "+key)
		report.Upserts++
		if apply {
			if err := g.Clients.Update(ctx, canonical); err != nil {
				logger.Warn("failed to write canonical client",
					zap.String("clientId", canonical.ID), zap.Error(err))
				report.Unresolved++
				continue
			}
		}

		for _, duplicate := range group[1:] {
			report.log("delete", "client", duplicate.ID, "duplicate of "+canonical.ID)
			report.Deletions++
			if apply {
				if err := g.Clients.DeleteByID(ctx, duplicate.ID); err != nil {
					logger.Warn("failed to delete duplicate client",
						zap.String("clientId", duplicate.ID), zap.Error(err))
					report.Unresolved++
				}
			}
		}
	}

	logger.Info("directory normalization finished",
		zap.String("companyId", scope.CompanyID),
		zap.Bool("applied", apply),
		zap.Int("upserts", report.Upserts),
		zap.Int("deletions", report.Deletions),
		zap.Int("unresolved", report.Unresolved))
	return report, nil
}

// recordScore ranks duplicates: valid company linkage, then explicit
// permissions, then metadata richness.
func recordScore(client models.Client) int {
	score := 0
	if client.CompanyID != "" {
		score += 4
	}
	if len(client.Permissions) > 0 {
		score += 2
	}
	if len(client.Metadata) > 0 {
		score++
	}
	return score
}

// mergeClients folds the duplicates into the highest-scoring record.
// The canonical record's populated fields win; duplicates only fill
// gaps and extend permissions/metadata.
func mergeClients(group []models.Client) models.Client {
	canonical := group[0]
	seen := map[string]bool{}
	for _, p := range canonical.Permissions {
		seen[p] = true
	}
	for _, other := range group[1:] {
		if canonical.Name == "" {
			canonical.Name = other.Name
		}
		if canonical.Phone == "" {
			canonical.Phone = other.Phone
		}
		for _, p := range other.Permissions {
			if !seen[p] {
				canonical.Permissions = append(canonical.Permissions, p)
				seen[p] = true
			}
		}
		for k, v := range other.Metadata {
			if canonical.Metadata == nil {
				canonical.Metadata = map[string]string{}
			}
			if _, ok := canonical.Metadata[k]; !ok {
				canonical.Metadata[k] = v
			}
		}
	}
	return canonical
}
