// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package queue

// RaceEnabled is true when the race detector is active. Tests use it to
// relax strict wall-clock timing assertions around BlockingRead, since the
// detector's instrumentation overhead makes tight deadlines flaky.
const RaceEnabled = true
