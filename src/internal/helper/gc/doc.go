// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library and adds scoped acquisition ([With]) so
// that every borrowed buffer has a single release point, plus a counting [Tracker]
// used to verify that decoding never leaks a buffer on any exit path.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
