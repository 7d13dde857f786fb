package optim

import (
	"math"

	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// The moments are composed from backend payload operations, so Adam runs on
// both the scalar and the array engine.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam[P any] struct {
	params []*autodiff.Node[P]
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int                     // Timestep for bias correction
	m      map[*autodiff.Node[P]]P // First moment estimates
	v      map[*autodiff.Node[P]]P // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over leaf parameters.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
func NewAdam[P any](params []*autodiff.Node[P], config AdamConfig) (*Adam[P], error) {
	if err := checkParams(params); err != nil {
		return nil, errors.Wrap(err, "adam")
	}
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam[P]{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*autodiff.Node[P]]P),
		v:      make(map[*autodiff.Node[P]]P),
	}, nil
}

// Step performs a single optimization step using Adam algorithm.
func (a *Adam[P]) Step() error {
	a.t++
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))
	klog.V(1).Infof("Adam step %d: %d parameters, lr=%g", a.t, len(a.params), a.lr)

	for _, param := range a.params {
		if err := a.updateParameter(param, biasCorrection1, biasCorrection2); err != nil {
			return errors.Wrapf(err, "adam: %s", param)
		}
	}
	return nil
}

// updateParameter performs Adam update for a single parameter.
func (a *Adam[P]) updateParameter(param *autodiff.Node[P], biasCorrection1, biasCorrection2 float64) error {
	backend := param.Engine().Backend()
	grad := param.Grad()

	m, exists := a.m[param]
	if !exists {
		m = backend.Zeros(param.Shape())
	}
	v, exists := a.v[param]
	if !exists {
		v = backend.Zeros(param.Shape())
	}

	// m_t = beta1 * m_{t-1} + (1-beta1) * grad
	m, err := backend.Add(backend.Scale(m, a.beta1), backend.Scale(grad, 1-a.beta1))
	if err != nil {
		return err
	}

	// v_t = beta2 * v_{t-1} + (1-beta2) * grad²
	gradSq, err := backend.Mul(grad, grad)
	if err != nil {
		return err
	}
	v, err = backend.Add(backend.Scale(v, a.beta2), backend.Scale(gradSq, 1-a.beta2))
	if err != nil {
		return err
	}
	a.m[param], a.v[param] = m, v

	mHat := backend.Scale(m, 1/biasCorrection1)
	vHat := backend.Scale(v, 1/biasCorrection2)

	// sqrt(v_hat) + eps
	denom, err := backend.Add(backend.Pow(vHat, 0.5), backend.Scale(backend.Ones(param.Shape()), a.eps))
	if err != nil {
		return err
	}
	ratio, err := backend.Mul(mHat, backend.Pow(denom, -1))
	if err != nil {
		return err
	}
	return descend(backend, param, backend.Scale(ratio, a.lr))
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam[P]) ZeroGrad() {
	for _, param := range a.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (a *Adam[P]) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam[P]) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the current timestep.
func (a *Adam[P]) GetTimestep() int {
	return a.t
}
