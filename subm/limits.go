package subm

import "github.com/ofast-team/backend/conf"

type effectiveLimits struct {
	TimeLimit   int // seconds
	MemoryLimit int // kilobytes
}

func clampLimits(timeLimit, memoryLimit int, lim conf.Limits) effectiveLimits {
	if timeLimit <= 0 {
		timeLimit = lim.DefaultTimeLimit
	}
	if memoryLimit <= 0 {
		memoryLimit = lim.DefaultMemoryLimit
	}
	timeLimit = min(timeLimit, lim.MaxTimeLimit)
	memoryLimit = max(min(memoryLimit, lim.MaxMemoryLimit), lim.MinMemoryLimit)
	return effectiveLimits{
		TimeLimit:   timeLimit,
		MemoryLimit: memoryLimit * 1000,
	}
}
