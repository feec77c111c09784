// Package streaming provides a block-based, backpressure-aware MODWT
// processor: callers push arbitrarily-sized chunks, the processor batches
// them into fixed-size blocks and publishes one modwt.Result per block to
// any number of subscribers. Blocks are independent — there is no
// inter-block continuity (no sliding overlap buffer) — so each published
// Result is a self-contained single-level MODWT of exactly one block.
package streaming

import (
	"fmt"
	"sync"

	"github.com/Prophetizo/VectorWave/catalog"
	"github.com/Prophetizo/VectorWave/internal/logging"
	"github.com/Prophetizo/VectorWave/modwt"
	vectorwave "github.com/Prophetizo/VectorWave"
)

// BackpressureMode selects what happens when a subscriber's demand is
// exhausted and a new block is ready to deliver.
type BackpressureMode int

const (
	// Block makes the publishing Push call wait until the slow
	// subscriber issues more demand via Request.
	Block BackpressureMode = iota

	// Drop discards the block for that subscriber and delivers
	// ErrBackpressureOverflow to its OnError instead of blocking Push.
	Drop
)

// FlushPolicy controls what Close does with a partially filled trailing
// block.
type FlushPolicy int

const (
	// DiscardPartial drops any buffered samples that don't fill a full
	// block.
	DiscardPartial FlushPolicy = iota

	// ProcessPartial zero-pads the trailing partial block up to
	// blockSize and publishes it like any other block.
	ProcessPartial
)

// Sink receives published blocks. OnResult/OnError/OnComplete are called
// synchronously from within Push or Close on the caller's goroutine — a
// Sink implementation must not block indefinitely or it will stall the
// whole processor under Block backpressure.
type Sink interface {
	OnResult(modwt.Result)
	OnError(error)
	OnComplete()
}

type subscription struct {
	sink         Sink
	mu           sync.Mutex
	cond         *sync.Cond
	demand       int64
	unsubscribed bool
}

// Processor batches pushed samples into fixed-size blocks and fans each
// block's MODWT result out to its subscribers.
type Processor struct {
	w            catalog.Wavelet
	mode         modwt.BoundaryMode
	blockSize    int
	backpressure BackpressureMode
	constructErr error

	mu     sync.Mutex
	buf    *sampleBuffer
	closed bool
	subs   []*subscription
}

// NewProcessor constructs a Processor for the given wavelet, boundary
// mode, block size, and backpressure policy. Construction never fails
// outright — an invalid wavelet or non-positive blockSize is remembered
// and surfaced as an error from the first Push or Close call, so callers
// can write NewProcessor directly into a variable the way the package doc
// shows.
func NewProcessor(w catalog.Wavelet, mode modwt.BoundaryMode, blockSize int, backpressure BackpressureMode) *Processor {
	p := &Processor{w: w, mode: mode, blockSize: blockSize, backpressure: backpressure, buf: newSampleBuffer(blockSize * 2)}
	if err := w.Validate(); err != nil {
		p.constructErr = err
	} else if blockSize < w.FilterLength() {
		p.constructErr = fmt.Errorf("streaming: block size %d shorter than filter length %d: %w", blockSize, w.FilterLength(), vectorwave.ErrInvalidArgument)
	}
	return p
}

// Subscribe registers sink with an initial demand of initialDemand blocks.
// A sink with zero remaining demand is subject to the processor's
// BackpressureMode the next time a block is ready for it.
func (p *Processor) Subscribe(sink Sink, initialDemand int64) {
	sub := &subscription{sink: sink, demand: initialDemand}
	sub.cond = sync.NewCond(&sub.mu)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.subs = append(p.subs, sub)
}

// Request grants sink additional demand, waking a Push call that is
// blocked delivering to it under BackpressureMode Block.
func (p *Processor) Request(sink Sink, n int64) {
	sub := p.findSub(sink)
	if sub == nil {
		return
	}
	sub.mu.Lock()
	sub.demand += n
	sub.mu.Unlock()
	sub.cond.Broadcast()
}

// Unsubscribe removes sink. A Push call currently blocked delivering to it
// under BackpressureMode Block is released without delivery.
func (p *Processor) Unsubscribe(sink Sink) {
	p.mu.Lock()
	var remaining []*subscription
	var removed *subscription
	for _, s := range p.subs {
		if s.sink == sink {
			removed = s
			continue
		}
		remaining = append(remaining, s)
	}
	p.subs = remaining
	p.mu.Unlock()

	if removed != nil {
		removed.mu.Lock()
		removed.unsubscribed = true
		removed.mu.Unlock()
		removed.cond.Broadcast()
	}
}

func (p *Processor) findSub(sink Sink) *subscription {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.subs {
		if s.sink == sink {
			return s
		}
	}
	return nil
}

// Push appends chunk to the processor's internal buffer, publishing one
// modwt.Result per complete block accumulated so far. Samples shorter
// than a full block are buffered for the next Push or Close.
func (p *Processor) Push(chunk []float64) error {
	p.mu.Lock()
	if p.constructErr != nil {
		err := p.constructErr
		p.mu.Unlock()
		return err
	}
	if p.closed {
		p.mu.Unlock()
		return vectorwave.ErrStreamClosed
	}
	p.buf.Write(chunk)

	var blocks [][]float64
	for p.buf.Available() >= p.blockSize {
		blocks = append(blocks, p.buf.Read(p.blockSize))
	}
	subsSnapshot := append([]*subscription(nil), p.subs...)
	p.mu.Unlock()

	for _, block := range blocks {
		result, err := modwt.Forward(p.w, p.mode, block)
		if err != nil {
			return err
		}
		p.publish(subsSnapshot, result)
	}
	return nil
}

// Close stops accepting further Push calls, applies flush to any
// buffered partial block, and calls OnComplete on every remaining
// subscriber.
func (p *Processor) Close(flush FlushPolicy) error {
	p.mu.Lock()
	if p.constructErr != nil {
		err := p.constructErr
		p.mu.Unlock()
		return err
	}
	if p.closed {
		p.mu.Unlock()
		return vectorwave.ErrStreamClosed
	}
	p.closed = true

	remaining := p.buf.ReadAll()
	var partial []float64
	if flush == ProcessPartial && len(remaining) > 0 {
		partial = make([]float64, p.blockSize)
		copy(partial, remaining)
	}
	subsSnapshot := append([]*subscription(nil), p.subs...)
	p.mu.Unlock()

	if partial != nil {
		result, err := modwt.Forward(p.w, p.mode, partial)
		if err != nil {
			return err
		}
		p.publish(subsSnapshot, result)
	}

	for _, sub := range subsSnapshot {
		p.safeOnComplete(sub)
	}
	return nil
}

func (p *Processor) publish(subs []*subscription, result modwt.Result) {
	for _, sub := range subs {
		p.deliver(sub, result)
	}
}

func (p *Processor) deliver(sub *subscription, result modwt.Result) {
	sub.mu.Lock()
	if sub.unsubscribed {
		sub.mu.Unlock()
		return
	}
	if sub.demand <= 0 {
		switch p.backpressure {
		case Block:
			for sub.demand <= 0 && !sub.unsubscribed {
				sub.cond.Wait()
			}
			if sub.unsubscribed {
				sub.mu.Unlock()
				return
			}
		case Drop:
			sub.mu.Unlock()
			p.safeOnError(sub, vectorwave.ErrBackpressureOverflow)
			return
		}
	}
	sub.demand--
	sub.mu.Unlock()
	p.safeOnResult(sub, result)
}

func (p *Processor) safeOnResult(sub *subscription, result modwt.Result) {
	defer p.recoverSubscriberFault(sub)
	sub.sink.OnResult(result)
}

func (p *Processor) safeOnError(sub *subscription, err error) {
	defer p.recoverSubscriberFault(sub)
	sub.sink.OnError(err)
}

func (p *Processor) safeOnComplete(sub *subscription) {
	defer p.recoverSubscriberFault(sub)
	sub.sink.OnComplete()
}

// recoverSubscriberFault isolates a panicking subscriber: it is
// unsubscribed and, best-effort, told why via OnError(ErrSubscriberFault).
// Other subscribers are unaffected.
func (p *Processor) recoverSubscriberFault(sub *subscription) {
	if r := recover(); r != nil {
		logging.GetGlobalLogger().Warn("streaming: subscriber panicked, isolating", logging.Fields{"panic": r})
		p.Unsubscribe(sub.sink)
		func() {
			defer func() { recover() }()
			sub.sink.OnError(vectorwave.ErrSubscriberFault)
		}()
	}
}
