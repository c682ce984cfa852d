// Package future implements a single-assignment asynchronous result
// primitive in the style of promise/future pairs.
//
// A Promise is the producer end: it supplies a value or an error exactly
// once. The Future obtained from it is the single-use consumer end: Get and
// Wait block until the outcome exists, Share converts it into a copyable
// SharedFuture for any number of consumers, and Then chains a continuation
// that runs as soon as the outcome is written.
//
//	p := future.NewPromise[int]()
//	f, _ := p.Future()
//	doubled, _ := future.Then(f, func(f *future.Future[int]) (int, error) {
//		v, err := f.Get()
//		return v * 2, err
//	})
//	go p.SetValue(21)
//	v, _ := doubled.Get() // 42
//
// Continuations run synchronously on whichever goroutine performs the
// completing transition — there is no scheduler, no worker pool, and no
// timeout or cancellation. A consumer of a state that is never completed
// blocks until the owning Promise is closed.
//
// Violations of the handle contract (completing twice, retrieving the
// Future twice, operating on a consumed handle) are reported synchronously
// as *Error values carrying one of the Code conditions. Failures supplied
// through Promise.SetError are stored opaquely and only resurface from Get.
package future
