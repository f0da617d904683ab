// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parallel fans document scans out over a bounded worker pool.
// Detectors are deterministic local functions, so there is no retry or
// circuit-breaker machinery: a file either scans or reports its error.
package parallel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"syllabus-scan/internal/observability"
)

// Job represents one file to scan.
type Job struct {
	JobID    string
	FilePath string
}

// Result represents one file's scan outcome. Payload carries whatever the
// ProcessFunc produced; Error is set when the file could not be processed.
type Result struct {
	JobID    string
	FilePath string
	Payload  interface{}
	Error    error
	Duration time.Duration
}

// Stats summarizes a batch run.
type Stats struct {
	TotalFiles     int
	ProcessedFiles int
	FailedFiles    int
	Duration       time.Duration
}

// ProcessFunc scans one file and returns its payload.
type ProcessFunc func(filePath string) (interface{}, error)

// ProgressFunc is called after each file completes.
type ProgressFunc func(completed, total int, filePath string)

// WorkerPool manages parallel file processing.
type WorkerPool struct {
	workers  int
	jobs     chan *Job
	results  chan *Result
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	observer *observability.StandardObserver
	process  ProcessFunc
}

// NewWorkerPool creates a worker pool running process on each submitted job.
func NewWorkerPool(workers int, process ProcessFunc, observer *observability.StandardObserver) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		workers:  workers,
		jobs:     make(chan *Job, workers*2),
		results:  make(chan *Result, workers*2),
		ctx:      ctx,
		cancel:   cancel,
		observer: observer,
		process:  process,
	}
}

// Start initializes worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// Stop waits for in-flight jobs and shuts the pool down.
func (wp *WorkerPool) Stop() {
	close(wp.jobs)
	wp.wg.Wait()
	close(wp.results)
	wp.cancel()
}

// Submit adds a job to the queue
func (wp *WorkerPool) Submit(job *Job) {
	select {
	case wp.jobs <- job:
	case <-wp.ctx.Done():
	}
}

// Results returns the results channel
func (wp *WorkerPool) Results() <-chan *Result {
	return wp.results
}

// worker processes jobs from the queue
func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for job := range wp.jobs {
		result := wp.processJob(job)
		select {
		case wp.results <- result:
		case <-wp.ctx.Done():
			return
		}
	}
}

func (wp *WorkerPool) processJob(job *Job) *Result {
	start := time.Now()

	var finishTiming func(bool, map[string]interface{})
	if wp.observer != nil {
		finishTiming = wp.observer.StartTiming("worker_pool", "process_job", job.FilePath)
	}

	payload, err := wp.process(job.FilePath)

	if finishTiming != nil {
		finishTiming(err == nil, map[string]interface{}{"job_id": job.JobID})
	}

	return &Result{
		JobID:    job.JobID,
		FilePath: job.FilePath,
		Payload:  payload,
		Error:    err,
		Duration: time.Since(start),
	}
}

// ProcessFiles runs process over every path with bounded parallelism and
// returns the results in completion order. Failed files are included with
// Error set; one failure never stops the batch.
func ProcessFiles(filePaths []string, workers int, process ProcessFunc, observer *observability.StandardObserver, progress ProgressFunc) ([]*Result, Stats) {
	start := time.Now()
	stats := Stats{TotalFiles: len(filePaths)}

	if len(filePaths) == 0 {
		stats.Duration = time.Since(start)
		return nil, stats
	}

	pool := NewWorkerPool(workers, process, observer)
	pool.Start()

	go func() {
		for i, path := range filePaths {
			pool.Submit(&Job{JobID: fmt.Sprintf("job-%d", i), FilePath: path})
		}
		pool.Stop()
	}()

	results := make([]*Result, 0, len(filePaths))
	for result := range pool.Results() {
		results = append(results, result)
		if result.Error != nil {
			stats.FailedFiles++
		} else {
			stats.ProcessedFiles++
		}
		if progress != nil {
			progress(len(results), len(filePaths), result.FilePath)
		}
	}

	stats.Duration = time.Since(start)
	return results, stats
}
