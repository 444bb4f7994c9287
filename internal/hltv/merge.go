package hltv

// Classify picks a role from weapon kill counts, a player is an AWPer when at least half
// of their rifle + sniper kills are sniper kills. No kills at all counts as a Rifler.
func Classify(rifleKills, sniperKills int) Role {
	total := rifleKills + sniperKills
	if total <= 0 {
		return RoleRifler
	}
	// sniper / total >= 0.5 without leaving the integers
	if 2*sniperKills >= total {
		return RoleAWPer
	}
	return RoleRifler
}

// Merge combines both views of a player. The role set on the summary is always replaced
// by the one derived from the individual weapon kills.
func Merge(summary Summary, individual Individual) Player {
	merged := summary
	if summary.TeamId != nil {
		teamId := *summary.TeamId
		merged.TeamId = &teamId
	}
	merged.Role = Classify(individual.RifleKills.Value, individual.SniperKills.Value)
	return Player{
		Summary:    merged,
		Individual: individual,
	}
}
