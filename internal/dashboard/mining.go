package dashboard

import (
	"context"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
)

// StartMining asks the backend to mine and then polls its status every poll interval,
// showing the session log the backend returns. Polling stops at the first status that is not
// mining, after which the chain and pending views are reloaded once. A second start
// while a session is active is rejected.
func (c *Controller) StartMining(ctx context.Context) error {
	if c.mining != nil {
		return c.reject(ErrMiningInProgress)
	}
	session := &miningSession{}
	c.mining = session

	async(c, func() (struct{}, error) {
		return struct{}{}, c.backend.StartMining(ctx)
	}, func(_ struct{}, err error) {
		if c.mining != session {
			return
		}
		if err != nil {
			c.mining = nil
			c.fail("start mining", err)
			return
		}
		c.view.ShowMiningLog(nil, true)
		c.view.SetStatus("Mining started")
		session.task = c.every(ctx, c.pollInterval, func(pollCtx context.Context, task *clock.Task) {
			c.poll(ctx, pollCtx, task, session)
		})
	})
	return nil
}

// poll runs on the task's goroutine. The task is canceled here, before the result is
// handed to the UI thread, so no further status request is made once mining is over.
func (c *Controller) poll(ctx, pollCtx context.Context, task *clock.Task, session *miningSession) {
	started := time.Now()
	status, err := c.backend.MiningStatus(pollCtx)
	c.metrics.ObservePoll(err, started)
	if err == nil && !status.IsMining {
		task.Cancel()
	}
	c.dispatcher.Post(func() {
		c.applyStatus(ctx, session, status, err)
	})
}

func (c *Controller) applyStatus(ctx context.Context, session *miningSession, status model.MiningStatus, err error) {
	if c.mining != session {
		return
	}
	session.polls++
	if err != nil {
		c.logger.Warn("mining status poll failed", zap.Error(err), zap.Int("poll", session.polls))
		c.view.SetStatus("Mining status unavailable, retrying")
		return
	}

	session.log = mergeLog(session.log, status.Log)
	c.view.ShowMiningLog(slices.Clone(session.log), status.IsMining)
	if status.IsMining {
		return
	}

	c.mining = nil
	c.logger.Info("mining finished", zap.Int("polls", session.polls))
	c.view.SetStatus("Mining finished")
	c.ReloadChain(ctx)
	c.LoadPending(ctx)
	c.metrics.ObserveSession(session.polls)
}

// mergeLog folds a returned log into the shown one. The backend reports the whole
// session log on every poll; a non-empty log that does not extend what is shown
// replaces it.
func mergeLog(shown, got []string) []string {
	if len(got) == 0 {
		return shown
	}
	if len(got) >= len(shown) && slices.Equal(got[:len(shown)], shown) {
		return append(shown, got[len(shown):]...)
	}
	return slices.Clone(got)
}
