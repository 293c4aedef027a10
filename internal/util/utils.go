package util

import (
	"math"

	"os-scheduler/internal/core"
)

// CalculateAverage returns the rounded mean waiting, response and turnaround times.
func CalculateAverage(processDetails []core.ProcessStat) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processDetails) == 0 {
		return
	}
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		responseTimeSum += float64(process.ResponseTime)
		turnAroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = Round2(waitingTimeSum / processCount)
	averageResponseTime = Round2(responseTimeSum / processCount)
	averageTurnAroundTime = Round2(turnAroundTimeSum / processCount)
	return
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
