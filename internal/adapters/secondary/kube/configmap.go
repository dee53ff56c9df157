package kube

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"car-price-service/internal/config"
	"car-price-service/internal/core/ports/output"
)

type configMapSource struct {
	client    kubernetes.Interface
	namespace string
	name      string
	key       string
}

// NewConfigMapSource builds a clientset from cfg and reads the artifact from
// one key of a ConfigMap.
func NewConfigMapSource(kcfg *config.KubernetesConfig, mcfg *config.ModelConfig) (ports.ArtifactSource, error) {
	var restCfg *rest.Config
	var err error

	if kcfg.InCluster {
		restCfg, err = rest.InClusterConfig()
	} else if kcfg.KubeConfigPath != "" {
		restCfg, err = clientcmd.BuildConfigFromFlags("", kcfg.KubeConfigPath)
	} else {
		home, _ := os.UserHomeDir()
		kubeconfig := filepath.Join(home, ".kube", "config")
		restCfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
	}
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	client, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	return NewConfigMapSourceWithClient(client, mcfg.ConfigMapNamespace, mcfg.ConfigMapName, mcfg.ConfigMapKey), nil
}

func NewConfigMapSourceWithClient(client kubernetes.Interface, namespace, name, key string) ports.ArtifactSource {
	if namespace == "" {
		namespace = "default"
	}
	return &configMapSource{client: client, namespace: namespace, name: name, key: key}
}

// Read prefers binaryData and falls back to data for plain JSON artifacts.
func (s *configMapSource) Read(ctx context.Context) ([]byte, string, error) {
	cm, err := s.client.CoreV1().ConfigMaps(s.namespace).Get(ctx, s.name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return nil, s.key, fmt.Errorf("configmap %s/%s not found: %w", s.namespace, s.name, err)
		}
		return nil, s.key, fmt.Errorf("get configmap: %w", err)
	}

	if data, ok := cm.BinaryData[s.key]; ok {
		return data, s.key, nil
	}
	if data, ok := cm.Data[s.key]; ok {
		return []byte(data), s.key, nil
	}
	return nil, s.key, fmt.Errorf("configmap %s/%s has no key %q", s.namespace, s.name, s.key)
}

func (s *configMapSource) Describe() string {
	return fmt.Sprintf("configmap:%s/%s#%s", s.namespace, s.name, s.key)
}
